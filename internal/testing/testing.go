// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/services"
)

// MockService is a configurable test double for [services.Service].
// Zero-value methods succeed with empty data; assign funcs to override.
type MockService struct {
	SelectProfileFn func(ctx context.Context, userID int) error
	SearchFn        func(ctx context.Context, query string) ([]models.MovieCandidate, error)
	CategoriesFn    func(ctx context.Context) ([]models.CategoryOption, error)
	AddMovieFn      func(ctx context.Context, movie models.NewMovie) (*services.AddMovieResult, error)
	ToggleFn        func(ctx context.Context, action models.Action, movieID int) (*services.ToggleResult, error)
	RateFn          func(ctx context.Context, rating models.Rating) error
	MovieRatingFn   func(ctx context.Context, movieID int) (*models.Rating, error)
}

var _ services.Service = (*MockService)(nil)

func (m *MockService) SelectProfile(ctx context.Context, userID int) error {
	if m.SelectProfileFn != nil {
		return m.SelectProfileFn(ctx, userID)
	}
	return nil
}

func (m *MockService) Search(ctx context.Context, query string) ([]models.MovieCandidate, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query)
	}
	return []models.MovieCandidate{}, nil
}

func (m *MockService) Categories(ctx context.Context) ([]models.CategoryOption, error) {
	if m.CategoriesFn != nil {
		return m.CategoriesFn(ctx)
	}
	return []models.CategoryOption{}, nil
}

func (m *MockService) AddMovie(ctx context.Context, movie models.NewMovie) (*services.AddMovieResult, error) {
	if m.AddMovieFn != nil {
		return m.AddMovieFn(ctx, movie)
	}
	return &services.AddMovieResult{Success: true}, nil
}

func (m *MockService) Toggle(ctx context.Context, action models.Action, movieID int) (*services.ToggleResult, error) {
	if m.ToggleFn != nil {
		return m.ToggleFn(ctx, action, movieID)
	}
	return &services.ToggleResult{Success: true}, nil
}

func (m *MockService) Rate(ctx context.Context, rating models.Rating) error {
	if m.RateFn != nil {
		return m.RateFn(ctx, rating)
	}
	return nil
}

func (m *MockService) MovieRating(ctx context.Context, movieID int) (*models.Rating, error) {
	if m.MovieRatingFn != nil {
		return m.MovieRatingFn(ctx, movieID)
	}
	return nil, nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if err == nil && !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
