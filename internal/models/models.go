// package models defines the data model for the SenFlix terminal client
package models

import (
	"fmt"
	"time"
)

// Model defines the base interface for all persistent models in the SenFlix client.
// Implementations include SearchQuery.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Source identifies where a movie candidate came from.
type Source string

const (
	SourceSenflix Source = "senflix" // already in the SenFlix catalog
	SourceOMDB    Source = "omdb"    // addable from the external OMDB lookup
	SourceManual  Source = "manual"  // entered by hand
)

// PosterPlaceholder is substituted when the API reports no usable poster.
const PosterPlaceholder = "/static/placeholders/poster_missing.png"

// MovieCandidate represents a movie as returned by search or manual entry.
// It is immutable once attached to a wizard session; only read.
type MovieCandidate struct {
	ID       int    `json:"id,omitempty"` // catalog id, set only for senflix results
	Title    string `json:"title"`
	Year     string `json:"year"`
	IMDbID   string `json:"imdbID"`
	Plot     string `json:"plot"`
	Poster   string `json:"poster"`
	Director string `json:"director"`
	Actors   string `json:"actors"`
	Source   Source `json:"source"`
}

// PosterURL returns the candidate's poster or the placeholder when the
// upstream lookup reported "N/A" or nothing at all.
func (m MovieCandidate) PosterURL() string {
	if m.Poster == "" || m.Poster == "N/A" {
		return PosterPlaceholder
	}
	return m.Poster
}

// InCatalog reports whether the candidate already exists in the SenFlix catalog.
func (m MovieCandidate) InCatalog() bool {
	return m.Source == SourceSenflix
}

// CategoryOption is server-provided reference data, fetched fresh every time
// the wizard's category step is entered.
type CategoryOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// MaxCategories caps category selections per movie. A sixth attempted
// selection is rejected in place, not truncated.
const MaxCategories = 5

// RatingMin and RatingMax bound the rating scale. Ratings are integers on a
// fixed 0-10 scale end-to-end; 0 means "not rated" and is rejected at submit.
const (
	RatingMin = 0
	RatingMax = 10
)

// Preferences holds the user flags gathered on the wizard's experience step.
type Preferences struct {
	Watched   bool
	Watchlist bool
	Favorite  bool
	Rating    int
	Comment   string
}

// Validate checks the preference values against the fixed rating scale.
func (p Preferences) Validate() error {
	if p.Rating < RatingMin || p.Rating > RatingMax {
		return fmt.Errorf("rating %d out of range [%d,%d]", p.Rating, RatingMin, RatingMax)
	}
	return nil
}

// NewMovie is the normalized payload for the add-movie endpoint. Year is
// coerced to an integer or null, rating defaults to 0, categories are an
// ordered list of ids.
type NewMovie struct {
	Title      string `json:"title"`
	Year       *int   `json:"year"`
	IMDbID     string `json:"imdbID"`
	Plot       string `json:"plot"`
	Poster     string `json:"poster"`
	Director   string `json:"director"`
	Actors     string `json:"actors"`
	Source     Source `json:"source"`
	Watched    bool   `json:"watched"`
	Watchlist  bool   `json:"watchlist"`
	Favorite   bool   `json:"favorite"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Categories []int  `json:"categories"`
}

// Validate checks the payload before submission.
func (n NewMovie) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("title is required")
	}
	if n.Rating < RatingMin || n.Rating > RatingMax {
		return fmt.Errorf("rating %d out of range [%d,%d]", n.Rating, RatingMin, RatingMax)
	}
	if len(n.Categories) > MaxCategories {
		return fmt.Errorf("at most %d categories allowed, got %d", MaxCategories, len(n.Categories))
	}
	return nil
}

// Action identifies a per-movie user-state control.
type Action string

const (
	ActionWatched   Action = "watched"
	ActionWatchlist Action = "watchlist"
	ActionFavorite  Action = "favorite"
	ActionRate      Action = "rate"
)

// IsToggle reports whether the action maps to a toggle endpoint. The rate
// action never calls a toggle endpoint; it opens the rating flow instead.
func (a Action) IsToggle() bool {
	switch a {
	case ActionWatched, ActionWatchlist, ActionFavorite:
		return true
	}
	return false
}

// UserFlags carries the per-movie user state the server may declare alongside
// a toggle response. Nil pointers mean the server did not report that flag.
type UserFlags struct {
	Watched   *bool `json:"user_watched,omitempty"`
	Watchlist *bool `json:"user_watchlist,omitempty"`
	Rated     *bool `json:"user_rated,omitempty"`
}

// Rating is a movie rating with optional comment, as stored by the server.
type Rating struct {
	MovieID int    `json:"movie_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate enforces the submit rule: a rating of 0 is a local validation
// error and never reaches the network.
func (r Rating) Validate() error {
	if r.Rating <= 0 {
		return fmt.Errorf("please select a rating (1-%d stars)", RatingMax)
	}
	if r.Rating > RatingMax {
		return fmt.Errorf("rating %d out of range [1,%d]", r.Rating, RatingMax)
	}
	return nil
}
