package ui

import (
	"github.com/senflix/sfx/internal/flow"
	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/services"
)

// debounceMsg fires when the pause after a keystroke elapses. It carries the
// sequence it was armed for; a stale sequence is dropped without a request.
type debounceMsg struct {
	seq uint64
}

// searchDoneMsg carries a completed search request tagged with its sequence.
type searchDoneMsg struct {
	seq     uint64
	results []models.MovieCandidate
	err     error
}

// categoriesFetchedMsg carries the category list for the wizard's final step.
type categoriesFetchedMsg struct {
	categories []models.CategoryOption
	err        error
}

// movieAddedMsg carries the outcome of a wizard submit.
type movieAddedMsg struct {
	result *services.AddMovieResult
	err    error
}

// toggleDoneMsg carries the server's answer for one toggle request.
type toggleDoneMsg struct {
	movieID int
	action  models.Action
	result  *services.ToggleResult
	err     error
}

// ratingFetchedMsg carries a stored rating for the dialog prefill.
type ratingFetchedMsg struct {
	movieID int
	rating  *models.Rating
	err     error
}

// ratingSavedMsg carries the outcome of a rating submit.
type ratingSavedMsg struct {
	movieID int
	err     error
}

// toastExpiredMsg fires when a toast's display window elapses. Dismissal is
// keyed by id so an expiry for a replaced toast is a no-op.
type toastExpiredMsg struct {
	slot flow.ToastSlot
	id   string
}

// refreshMsg fires after the post-submit settle delay and re-runs the
// active search so the new movie shows up in results.
type refreshMsg struct{}
