package flow

import (
	"errors"
	"testing"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

func TestWizardSession(t *testing.T) {
	candidate := models.MovieCandidate{
		Title:  "Heat",
		Year:   "1995",
		IMDbID: "tt0113277",
		Source: models.SourceOMDB,
	}

	t.Run("Starts At Search Step", func(t *testing.T) {
		w := NewWizardSession()
		if w.Step() != StepSearch {
			t.Errorf("expected StepSearch, got %v", w.Step())
		}
		if w.ID() == "" {
			t.Error("expected a session id")
		}
	})

	t.Run("Next Without Selection Is Rejected", func(t *testing.T) {
		w := NewWizardSession()
		if err := w.Next(); !errors.Is(err, shared.ErrNoSelection) {
			t.Errorf("expected ErrNoSelection, got %v", err)
		}
		if w.Step() != StepSearch {
			t.Errorf("expected wizard to stay at StepSearch, got %v", w.Step())
		}
	})

	t.Run("Select Advances Exactly One Step", func(t *testing.T) {
		w := NewWizardSession()
		w.Select(candidate)

		if w.Step() != StepConfirm {
			t.Errorf("expected StepConfirm, got %v", w.Step())
		}
		if w.Selected() == nil || w.Selected().Title != "Heat" {
			t.Error("expected selected candidate to be attached")
		}
	})

	t.Run("Back Is Hidden At Search Step", func(t *testing.T) {
		w := NewWizardSession()
		if w.Back() {
			t.Error("expected Back to report false at the first step")
		}

		w.Select(candidate)
		if !w.Back() {
			t.Error("expected Back to succeed after advancing")
		}
		if w.Step() != StepSearch {
			t.Errorf("expected StepSearch after Back, got %v", w.Step())
		}
	})

	t.Run("Resume Opens At Confirm Step", func(t *testing.T) {
		w := ResumeWizardSession(candidate, StepConfirm)
		if w.Step() != StepConfirm {
			t.Errorf("expected StepConfirm, got %v", w.Step())
		}
		if w.Selected() == nil {
			t.Error("expected candidate to be pre-attached")
		}
	})

	t.Run("Resume With Invalid Step Falls Back To Search", func(t *testing.T) {
		w := ResumeWizardSession(candidate, WizardStep(9))
		if w.Step() != StepSearch {
			t.Errorf("expected StepSearch, got %v", w.Step())
		}
	})

	t.Run("Categories", func(t *testing.T) {
		atCategories := func() *WizardSession {
			w := NewWizardSession()
			w.Select(candidate)
			w.Next()
			w.Next()
			return w
		}

		t.Run("Toggle Adds And Removes", func(t *testing.T) {
			w := atCategories()
			if err := w.ToggleCategory(3); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !w.CategorySelected(3) {
				t.Error("expected category 3 selected")
			}
			if err := w.ToggleCategory(3); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if w.CategorySelected(3) {
				t.Error("expected category 3 deselected")
			}
		})

		t.Run("Sixth Selection Rejected In Place", func(t *testing.T) {
			w := atCategories()
			for id := 1; id <= 5; id++ {
				if err := w.ToggleCategory(id); err != nil {
					t.Fatalf("expected selection %d to succeed, got %v", id, err)
				}
			}

			err := w.ToggleCategory(6)
			if !errors.Is(err, shared.ErrTooManyChoices) {
				t.Errorf("expected ErrTooManyChoices, got %v", err)
			}
			if got := w.Categories(); len(got) != 5 {
				t.Errorf("expected prior 5 selections untouched, got %v", got)
			}
			if w.CategorySelected(6) {
				t.Error("rejected selection must not be recorded")
			}
		})

		t.Run("Deselect Frees A Slot", func(t *testing.T) {
			w := atCategories()
			for id := 1; id <= 5; id++ {
				w.ToggleCategory(id)
			}
			w.ToggleCategory(2)
			if err := w.ToggleCategory(6); err != nil {
				t.Errorf("expected selection to succeed after freeing a slot, got %v", err)
			}
		})

		t.Run("Selections Reset On Re-Entry", func(t *testing.T) {
			w := atCategories()
			w.ToggleCategory(1)
			w.ToggleCategory(2)

			w.Back()
			w.Next()

			if got := w.Categories(); len(got) != 0 {
				t.Errorf("expected selections cleared on re-entry, got %v", got)
			}
		})
	})

	t.Run("Submit Guard", func(t *testing.T) {
		w := NewWizardSession()
		w.Select(candidate)

		if !w.BeginSubmit() {
			t.Error("expected first BeginSubmit to succeed")
		}
		if w.BeginSubmit() {
			t.Error("expected second BeginSubmit to be rejected mid-flight")
		}
		w.EndSubmit()
		if !w.BeginSubmit() {
			t.Error("expected BeginSubmit to succeed after EndSubmit")
		}
	})

	t.Run("Payload", func(t *testing.T) {
		t.Run("Requires A Selection", func(t *testing.T) {
			w := NewWizardSession()
			if _, err := w.Payload(); !errors.Is(err, shared.ErrNoSelection) {
				t.Errorf("expected ErrNoSelection, got %v", err)
			}
		})

		t.Run("Normalizes Fields", func(t *testing.T) {
			w := NewWizardSession()
			w.Select(candidate)
			w.SetPreferences(models.Preferences{
				Watched: true,
				Rating:  8,
				Comment: "  all-timer  ",
			})
			w.Next()
			w.Next()
			w.ToggleCategory(4)

			payload, err := w.Payload()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if payload.Year == nil || *payload.Year != 1995 {
				t.Errorf("expected year 1995, got %v", payload.Year)
			}
			if payload.Comment != "all-timer" {
				t.Errorf("expected trimmed comment, got %q", payload.Comment)
			}
			if len(payload.Categories) != 1 || payload.Categories[0] != 4 {
				t.Errorf("expected categories [4], got %v", payload.Categories)
			}
			if !payload.Watched || payload.Rating != 8 {
				t.Errorf("expected preferences carried through, got %+v", payload)
			}
		})

		t.Run("Unparseable Year Is Null", func(t *testing.T) {
			w := NewWizardSession()
			w.Select(models.MovieCandidate{Title: "Untitled", Year: "N/A"})

			payload, err := w.Payload()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if payload.Year != nil {
				t.Errorf("expected nil year, got %v", *payload.Year)
			}
		})

		t.Run("Range Year Takes Leading Value", func(t *testing.T) {
			w := NewWizardSession()
			w.Select(models.MovieCandidate{Title: "Series", Year: "2001-2003"})

			payload, _ := w.Payload()
			if payload.Year == nil || *payload.Year != 2001 {
				t.Errorf("expected leading year 2001, got %v", payload.Year)
			}
		})

		t.Run("Missing Source Defaults To Manual", func(t *testing.T) {
			w := NewWizardSession()
			w.Select(models.MovieCandidate{Title: "Hand Entered"})

			payload, _ := w.Payload()
			if payload.Source != models.SourceManual {
				t.Errorf("expected manual source, got %s", payload.Source)
			}
		})
	})

	t.Run("Final Step Label", func(t *testing.T) {
		w := NewWizardSession()
		w.Select(candidate)
		if w.AtFinalStep() {
			t.Error("confirm step is not final")
		}
		w.Next()
		w.Next()
		if !w.AtFinalStep() {
			t.Error("categories step is final")
		}
	})
}
