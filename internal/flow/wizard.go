package flow

import (
	"strconv"
	"strings"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

// WizardStep identifies a step in the add-movie flow.
type WizardStep int

const (
	StepSearch WizardStep = iota + 1
	StepConfirm
	StepPreferences
	StepCategories
)

// TotalSteps is the number of wizard steps.
const TotalSteps = 4

func (s WizardStep) String() string {
	switch s {
	case StepSearch:
		return "Search"
	case StepConfirm:
		return "Movie Information"
	case StepPreferences:
		return "Your Experience"
	case StepCategories:
		return "Categories"
	default:
		return "Unknown"
	}
}

// WizardSession drives the four-step add-movie flow. One session exists per
// open wizard; it is created fresh on open and discarded on close, cancel or
// successful submit. Nothing survives across sessions.
type WizardSession struct {
	id         string
	step       WizardStep
	selected   *models.MovieCandidate
	prefs      models.Preferences
	categories []int
	submitting bool
}

// NewWizardSession creates a session starting at the search step.
func NewWizardSession() *WizardSession {
	return &WizardSession{
		id:   shared.GenerateID(),
		step: StepSearch,
	}
}

// ResumeWizardSession creates a session pre-seeded with a candidate at the
// given step, as when a navbar search result feeds the wizard directly at
// the confirm step.
func ResumeWizardSession(movie models.MovieCandidate, step WizardStep) *WizardSession {
	if step < StepSearch || step > StepCategories {
		step = StepSearch
	}
	return &WizardSession{
		id:       shared.GenerateID(),
		step:     step,
		selected: &movie,
	}
}

func (w *WizardSession) ID() string       { return w.id }
func (w *WizardSession) Step() WizardStep { return w.step }

// Selected returns the attached candidate, nil before a selection is made.
// The candidate is immutable once attached; only read.
func (w *WizardSession) Selected() *models.MovieCandidate { return w.selected }

func (w *WizardSession) Preferences() models.Preferences { return w.prefs }

// SetPreferences syncs the experience-step inputs into the session. Called
// when leaving the preferences step.
func (w *WizardSession) SetPreferences(p models.Preferences) {
	w.prefs = p
}

// SetRating records a star click on the preferences step.
func (w *WizardSession) SetRating(n int) {
	if n < models.RatingMin || n > models.RatingMax {
		return
	}
	w.prefs.Rating = n
}

// Select attaches a search result and advances exactly one step, never an
// index jump. This is the only forward path out of the search step.
func (w *WizardSession) Select(movie models.MovieCandidate) {
	w.selected = &movie
	if w.step < StepCategories {
		w.enter(w.step + 1)
	}
}

// Next advances one step after validating the current one. At the final
// step, Next does not advance; callers submit instead.
func (w *WizardSession) Next() error {
	switch w.step {
	case StepSearch, StepConfirm:
		if w.selected == nil {
			return shared.ErrNoSelection
		}
	}

	if w.step < StepCategories {
		w.enter(w.step + 1)
	}
	return nil
}

// Back moves one step backwards. Reports false at the search step, where
// the control is hidden.
func (w *WizardSession) Back() bool {
	if w.step <= StepSearch {
		return false
	}
	w.enter(w.step - 1)
	return true
}

// enter applies entry rules for a step. Category selections do not survive
// leaving the step: the list is refetched fresh and selections reset.
func (w *WizardSession) enter(step WizardStep) {
	w.step = step
	if step == StepCategories {
		w.categories = nil
	}
}

// AtFinalStep reports whether the forward control reads "Save" rather than
// "Next".
func (w *WizardSession) AtFinalStep() bool {
	return w.step == StepCategories
}

// ToggleCategory adds or removes a category selection. The five-item cap is
// checked at click time; a rejected sixth selection leaves prior selections
// untouched and returns [shared.ErrTooManyChoices].
func (w *WizardSession) ToggleCategory(id int) error {
	for i, existing := range w.categories {
		if existing == id {
			w.categories = append(w.categories[:i], w.categories[i+1:]...)
			return nil
		}
	}

	if len(w.categories) >= models.MaxCategories {
		return shared.ErrTooManyChoices
	}

	w.categories = append(w.categories, id)
	return nil
}

// CategorySelected reports whether the category is currently selected.
func (w *WizardSession) CategorySelected(id int) bool {
	for _, existing := range w.categories {
		if existing == id {
			return true
		}
	}
	return false
}

// Categories returns the ordered selection.
func (w *WizardSession) Categories() []int {
	out := make([]int, len(w.categories))
	copy(out, w.categories)
	return out
}

// BeginSubmit marks the session mid-flight, disabling the save control.
// Reports false when a submit is already in progress.
func (w *WizardSession) BeginSubmit() bool {
	if w.submitting || w.selected == nil {
		return false
	}
	w.submitting = true
	return true
}

// EndSubmit re-enables the save control after a failed submit.
func (w *WizardSession) EndSubmit() {
	w.submitting = false
}

func (w *WizardSession) Submitting() bool { return w.submitting }

// Payload assembles the normalized create payload: year coerced to an
// integer or null, rating defaulting to 0, categories as an ordered list.
func (w *WizardSession) Payload() (models.NewMovie, error) {
	if w.selected == nil {
		return models.NewMovie{}, shared.ErrNoSelection
	}

	movie := models.NewMovie{
		Title:      w.selected.Title,
		Year:       coerceYear(w.selected.Year),
		IMDbID:     w.selected.IMDbID,
		Plot:       w.selected.Plot,
		Poster:     w.selected.Poster,
		Director:   w.selected.Director,
		Actors:     w.selected.Actors,
		Source:     w.selected.Source,
		Watched:    w.prefs.Watched,
		Watchlist:  w.prefs.Watchlist,
		Favorite:   w.prefs.Favorite,
		Rating:     w.prefs.Rating,
		Comment:    strings.TrimSpace(w.prefs.Comment),
		Categories: w.Categories(),
	}

	if movie.Source == "" {
		movie.Source = models.SourceManual
	}

	return movie, nil
}

// coerceYear parses the leading integer of a year string ("1999",
// "2001–2003"), returning nil when no year can be read.
func coerceYear(year string) *int {
	year = strings.TrimSpace(year)
	digits := year
	for i, r := range year {
		if r < '0' || r > '9' {
			digits = year[:i]
			break
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}
