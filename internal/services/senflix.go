// SenFlix API implementation of [Service]
//
// Endpoint shapes follow the server's JSON/HTTP contract; the client never
// guesses post-action state, it adopts whatever the server declares.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

// SenflixService implements [Service] against a SenFlix server.
type SenflixService struct {
	api *APIService
}

var _ Service = (*SenflixService)(nil)

// NewSenflixService creates a SenFlix service on top of a raw API client.
func NewSenflixService(api *APIService) *SenflixService {
	if api == nil {
		api = NewAPIService("", nil)
	}
	return &SenflixService{api: api}
}

// Name returns the service name.
func (s *SenflixService) Name() string {
	return "SenFlix"
}

// envelope is the common wrapper on SenFlix JSON responses.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

// decode applies the error taxonomy to a raw response and unmarshals the
// body into target on success.
//
// Transport errors synthesize a message from the HTTP status when the body
// is not JSON. Application errors (success=false, or an error field on a
// non-OK JSON body) surface the server's message verbatim as [*APIError].
func decode(resp *APIResponse, target any) error {
	if !resp.OK() {
		var env envelope
		if resp.IsJSON && json.Unmarshal(resp.Body, &env) == nil && env.Error != "" {
			return &APIError{Message: env.Error}
		}
		return fmt.Errorf("%w: server returned %d %s", shared.ErrAPIRequest, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var env envelope
	if resp.IsJSON && json.Unmarshal(resp.Body, &env) == nil {
		if env.Success != nil && !*env.Success {
			return &APIError{Message: env.Error}
		}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SelectProfile signs in to a profile via the selection route. The session
// cookie is carried by the underlying client's cookie jar or the imported
// browser session.
func (s *SenflixService) SelectProfile(ctx context.Context, userID int) error {
	resp, err := s.api.Get(ctx, "/select_user/"+strconv.Itoa(userID))
	if err != nil {
		return err
	}

	if !resp.OK() {
		return fmt.Errorf("%w: profile %d: server returned %d", shared.ErrNotSignedIn, userID, resp.StatusCode)
	}

	return nil
}

// Search queries /search_omdb. Results mix catalog ("senflix") and external
// ("omdb") candidates.
func (s *SenflixService) Search(ctx context.Context, query string) ([]models.MovieCandidate, error) {
	if len(query) < 2 {
		return nil, shared.ErrQueryTooShort
	}

	resp, err := s.api.Get(ctx, "/search_omdb?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}

	var body struct {
		Results []models.MovieCandidate `json:"results"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	return body.Results, nil
}

// Categories fetches the category reference data for the wizard's final step.
func (s *SenflixService) Categories(ctx context.Context) ([]models.CategoryOption, error) {
	resp, err := s.api.Get(ctx, "/api/categories")
	if err != nil {
		return nil, err
	}

	var body struct {
		Success    bool                    `json:"success"`
		Categories []models.CategoryOption `json:"categories"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	return body.Categories, nil
}

// AddMovie submits the wizard payload to /add_new_movie.
func (s *SenflixService) AddMovie(ctx context.Context, movie models.NewMovie) (*AddMovieResult, error) {
	if err := movie.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	data, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal movie: %w", err)
	}

	resp, err := s.api.Post(ctx, "/add_new_movie", data)
	if err != nil {
		return nil, err
	}

	var result AddMovieResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Toggle POSTs to the per-action toggle endpoint and returns the server's
// declared post-state. The rate action has no toggle endpoint.
func (s *SenflixService) Toggle(ctx context.Context, action models.Action, movieID int) (*ToggleResult, error) {
	if !action.IsToggle() {
		return nil, fmt.Errorf("%w: %q is not a toggle action", shared.ErrInvalidArgument, action)
	}

	resp, err := s.api.Post(ctx, fmt.Sprintf("/toggle_%s/%d", action, movieID), nil)
	if err != nil {
		return nil, err
	}

	var result ToggleResult
	if err := decode(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Rate submits a rating as a form-encoded POST to /rate_movie.
func (s *SenflixService) Rate(ctx context.Context, rating models.Rating) error {
	if err := rating.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	form := url.Values{}
	form.Set("movie_id", strconv.Itoa(rating.MovieID))
	form.Set("rating", strconv.Itoa(rating.Rating))
	form.Set("comment", rating.Comment)

	resp, err := s.api.PostForm(ctx, "/rate_movie", form)
	if err != nil {
		return err
	}

	return decode(resp, nil)
}

// MovieRating fetches any stored rating for the movie. A successful but
// empty response maps to [shared.ErrNoRating] so callers leave their form
// blank rather than guessing.
func (s *SenflixService) MovieRating(ctx context.Context, movieID int) (*models.Rating, error) {
	resp, err := s.api.Get(ctx, "/get_movie_rating/"+strconv.Itoa(movieID))
	if err != nil {
		return nil, err
	}

	var body struct {
		Success bool   `json:"success"`
		Rating  *int   `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	if body.Rating == nil {
		return nil, fmt.Errorf("%w: movie %d", shared.ErrNoRating, movieID)
	}

	return &models.Rating{MovieID: movieID, Rating: *body.Rating, Comment: body.Comment}, nil
}
