// package services defines interface Service for interacting with the SenFlix HTTP API
package services

import (
	"context"

	"github.com/senflix/sfx/internal/models"
)

// Service defines the client-facing surface of the SenFlix server. The server
// is the sole source of truth; every method returns its declared state.
type Service interface {
	// SelectProfile signs in to a profile, establishing the cookie session
	// the mutating endpoints require.
	SelectProfile(ctx context.Context, userID int) error

	// Search queries the combined catalog/OMDB lookup. Queries shorter than
	// two characters are rejected locally and never reach the server.
	Search(ctx context.Context, query string) ([]models.MovieCandidate, error)

	// Categories fetches category reference data. Fetched fresh on every
	// wizard category step; never cached across sessions.
	Categories(ctx context.Context) ([]models.CategoryOption, error)

	// AddMovie submits the wizard's normalized create payload.
	AddMovie(ctx context.Context, movie models.NewMovie) (*AddMovieResult, error)

	// Toggle flips a binary user flag (watched, watchlist, favorite) for a
	// movie and returns the server's authoritative post-state.
	Toggle(ctx context.Context, action models.Action, movieID int) (*ToggleResult, error)

	// Rate submits a rating with optional comment as a form-encoded POST.
	Rate(ctx context.Context, rating models.Rating) error

	// MovieRating fetches any stored rating for a movie. Returns
	// [shared.ErrNoRating] wrapped when the server reports none.
	MovieRating(ctx context.Context, movieID int) (*models.Rating, error)

	// Name returns the name of the service.
	Name() string
}

// AddMovieResult is the server's response to a successful movie creation.
type AddMovieResult struct {
	Success        bool   `json:"success"`
	PosterFilename string `json:"poster_filename,omitempty"`
}

// ToggleResult carries the server-declared post-state of a toggle. NewState
// is the flag that was flipped; Flags may report sibling state for the same
// movie that changed as a side effect.
type ToggleResult struct {
	Success   bool  `json:"success"`
	NewState  *bool `json:"new_state,omitempty"`
	Watched   *bool `json:"user_watched,omitempty"`
	Watchlist *bool `json:"user_watchlist,omitempty"`
	Rated     *bool `json:"user_rated,omitempty"`
}

// UserFlags folds the optional sibling fields into a [models.UserFlags].
func (t *ToggleResult) UserFlags() models.UserFlags {
	return models.UserFlags{Watched: t.Watched, Watchlist: t.Watchlist, Rated: t.Rated}
}

// APIError is an application-level failure: the HTTP exchange succeeded but
// the server reported success=false. The message is surfaced verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}
