package flow

import (
	"strings"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

// RatingSession drives the rate-movie dialog for one movie. Opening the
// dialog fetches any stored rating; editing happens locally; submit is
// blocked while the rating is still zero.
type RatingSession struct {
	movieID int
	title   string
	poster  string

	rating     int
	comment    string
	prefilled  bool
	submitting bool
}

// NewRatingSession opens a session for the movie identified by the card
// that launched it. Title and poster are display metadata only.
func NewRatingSession(movieID int, title, poster string) *RatingSession {
	return &RatingSession{movieID: movieID, title: title, poster: poster}
}

func (r *RatingSession) MovieID() int   { return r.movieID }
func (r *RatingSession) Title() string  { return r.title }
func (r *RatingSession) Poster() string { return r.poster }

func (r *RatingSession) Rating() int     { return r.rating }
func (r *RatingSession) Comment() string { return r.comment }

// Prefilled reports whether the session was seeded from a stored rating.
func (r *RatingSession) Prefilled() bool { return r.prefilled }

// Prefill seeds the dialog from a stored rating. A fetch that failed or
// returned nothing leaves the session blank; the dialog opens regardless.
func (r *RatingSession) Prefill(stored *models.Rating, err error) {
	if err != nil || stored == nil || stored.Rating <= 0 {
		return
	}
	r.rating = stored.Rating
	r.comment = stored.Comment
	r.prefilled = true
}

// SetRating records a star click. Values outside 1..10 are ignored.
func (r *RatingSession) SetRating(n int) {
	if n < 1 || n > models.RatingMax {
		return
	}
	r.rating = n
}

func (r *RatingSession) SetComment(comment string) {
	r.comment = comment
}

// BeginSubmit validates and marks the session mid-flight. Submitting with
// no stars selected fails with [shared.ErrRatingRequired] before any
// request is issued.
func (r *RatingSession) BeginSubmit() error {
	if r.submitting {
		return nil
	}
	if r.rating <= 0 {
		return shared.ErrRatingRequired
	}
	r.submitting = true
	return nil
}

// EndSubmit re-enables the dialog after a failed submit.
func (r *RatingSession) EndSubmit() {
	r.submitting = false
}

func (r *RatingSession) Submitting() bool { return r.submitting }

// Payload assembles the submission.
func (r *RatingSession) Payload() models.Rating {
	return models.Rating{
		MovieID: r.movieID,
		Rating:  r.rating,
		Comment: strings.TrimSpace(r.comment),
	}
}
