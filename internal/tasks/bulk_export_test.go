package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/senflix/sfx/internal/models"
	tu "github.com/senflix/sfx/internal/testing"
)

func TestBulkExport(t *testing.T) {
	candidates := []models.MovieCandidate{
		{ID: 1, Title: "Heat", Year: "1995", Source: models.SourceSenflix},
		{Title: "Heat 2", Year: "2027", Source: models.SourceOMDB},
	}

	t.Run("exports all queries and writes a manifest", func(t *testing.T) {
		svc := &tu.MockService{
			SearchFn: func(ctx context.Context, query string) ([]models.MovieCandidate, error) {
				return candidates, nil
			},
		}
		engine := NewSearchExporter(svc)
		outDir := t.TempDir()

		result, err := engine.BulkExport(context.Background(), nil,
			[]string{"heat", "alien"}, BulkExportOpts{Format: "json", OutputDir: outDir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.TotalQueries != 2 {
			t.Errorf("expected 2 total queries, got %d", result.TotalQueries)
		}
		if result.SuccessfulExports != 2 {
			t.Errorf("expected 2 successful exports, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 0 {
			t.Errorf("expected 0 failed exports, got %d", result.FailedExports)
		}

		for _, query := range []string{"heat", "alien"} {
			path := filepath.Join(outDir, query+".json")
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected export file %s: %v", path, err)
			}
		}

		if result.ManifestPath == "" {
			t.Fatal("expected manifest path to be set")
		}
		data, err := os.ReadFile(result.ManifestPath)
		if err != nil {
			t.Fatalf("failed to read manifest: %v", err)
		}
		if !strings.Contains(string(data), `"total_queries": 2`) {
			t.Errorf("expected manifest to record total queries, got %s", data)
		}
	})

	t.Run("collects partial failures without aborting", func(t *testing.T) {
		svc := &tu.MockService{
			SearchFn: func(ctx context.Context, query string) ([]models.MovieCandidate, error) {
				if query == "broken" {
					return nil, errors.New("server unreachable")
				}
				return candidates, nil
			},
		}
		engine := NewSearchExporter(svc)

		result, err := engine.BulkExport(context.Background(), nil,
			[]string{"heat", "broken"}, BulkExportOpts{Format: "csv", OutputDir: t.TempDir()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.SuccessfulExports != 1 {
			t.Errorf("expected 1 successful export, got %d", result.SuccessfulExports)
		}
		if result.FailedExports != 1 {
			t.Errorf("expected 1 failed export, got %d", result.FailedExports)
		}

		var failed *QueryExportResult
		for i := range result.Results {
			if !result.Results[i].Success {
				failed = &result.Results[i]
			}
		}
		if failed == nil {
			t.Fatal("expected a failed result entry")
		}
		if failed.Query != "broken" {
			t.Errorf("expected failed query to be recorded, got %q", failed.Query)
		}
		if failed.ErrorText == "" {
			t.Error("expected failure text for the manifest")
		}
	})

	t.Run("reports progress updates", func(t *testing.T) {
		svc := &tu.MockService{
			SearchFn: func(ctx context.Context, query string) ([]models.MovieCandidate, error) {
				return candidates, nil
			},
		}
		engine := NewSearchExporter(svc)
		progress := make(chan ProgressUpdate, 16)

		_, err := engine.BulkExport(context.Background(), progress,
			[]string{"heat"}, BulkExportOpts{Format: "json", OutputDir: t.TempDir()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		close(progress)

		phases := map[Phase]bool{}
		for update := range progress {
			phases[update.Phase] = true
		}
		if !phases[QueueQueries] {
			t.Error("expected a queue phase update")
		}
		if !phases[WriteExport] {
			t.Error("expected an export phase update")
		}
	})

	t.Run("nil service is rejected", func(t *testing.T) {
		engine := &SearchExporter{}

		_, err := engine.BulkExport(context.Background(), nil, []string{"heat"}, BulkExportOpts{})
		if err == nil {
			t.Fatal("expected error for nil service")
		}
	})

	t.Run("normalizes filename stems", func(t *testing.T) {
		cases := []struct {
			query string
			want  string
		}{
			{"The  Matrix", "the_matrix"},
			{"", "search"},
			{"  HEAT  ", "heat"},
		}
		for _, tc := range cases {
			if got := exportBase(tc.query); got != tc.want {
				t.Errorf("exportBase(%q) = %q, want %q", tc.query, got, tc.want)
			}
		}
	})

	t.Run("unknown format falls back to JSON", func(t *testing.T) {
		svc := &tu.MockService{
			SearchFn: func(ctx context.Context, query string) ([]models.MovieCandidate, error) {
				return candidates, nil
			},
		}
		engine := NewSearchExporter(svc)
		outDir := t.TempDir()

		result, err := engine.BulkExport(context.Background(), nil,
			[]string{"heat"}, BulkExportOpts{Format: "yaml", OutputDir: outDir})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.SuccessfulExports != 1 {
			t.Fatalf("expected success, got %+v", result)
		}
		path := filepath.Join(outDir, "heat.json")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected JSON fallback file %s: %v", path, err)
		}
	})
}

func TestBulkExportOutputDirDefault(t *testing.T) {
	svc := &tu.MockService{
		SearchFn: func(ctx context.Context, query string) ([]models.MovieCandidate, error) {
			return nil, nil
		},
	}
	engine := NewSearchExporter(svc)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	tu.MustChdir(t, t.TempDir())
	t.Cleanup(func() { tu.MustChdir(t, cwd) })

	result, err := engine.BulkExport(context.Background(), nil, []string{"heat"}, BulkExportOpts{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.OutputDirectory == "" {
		t.Fatal("expected a default output directory")
	}
	if !strings.HasPrefix(filepath.Base(result.OutputDirectory), "senflix_export_") {
		t.Errorf("expected default directory prefix, got %s", result.OutputDirectory)
	}
	tu.AssertDirExists(t, result.OutputDirectory)
}
