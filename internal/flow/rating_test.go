package flow

import (
	"errors"
	"testing"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

func TestRatingSession(t *testing.T) {
	t.Run("Prefill", func(t *testing.T) {
		t.Run("Seeds From Stored Rating", func(t *testing.T) {
			r := NewRatingSession(7, "Heat", "heat.jpg")
			r.Prefill(&models.Rating{MovieID: 7, Rating: 8, Comment: "great"}, nil)

			if r.Rating() != 8 || r.Comment() != "great" {
				t.Errorf("expected prefilled values, got %d %q", r.Rating(), r.Comment())
			}
			if !r.Prefilled() {
				t.Error("expected session marked prefilled")
			}
		})

		t.Run("Failed Fetch Leaves Session Blank", func(t *testing.T) {
			r := NewRatingSession(7, "Heat", "heat.jpg")
			r.Prefill(nil, shared.ErrNoRating)

			if r.Rating() != 0 || r.Comment() != "" || r.Prefilled() {
				t.Error("expected blank session after failed fetch")
			}
		})

		t.Run("Zero Stored Rating Is Ignored", func(t *testing.T) {
			r := NewRatingSession(7, "Heat", "heat.jpg")
			r.Prefill(&models.Rating{MovieID: 7, Rating: 0}, nil)

			if r.Prefilled() {
				t.Error("expected zero rating not to prefill")
			}
		})
	})

	t.Run("SetRating Ignores Out Of Range", func(t *testing.T) {
		r := NewRatingSession(7, "Heat", "heat.jpg")
		r.SetRating(11)
		r.SetRating(0)
		if r.Rating() != 0 {
			t.Errorf("expected rating untouched, got %d", r.Rating())
		}
		r.SetRating(10)
		if r.Rating() != 10 {
			t.Errorf("expected rating 10, got %d", r.Rating())
		}
	})

	t.Run("Submit Requires Stars", func(t *testing.T) {
		r := NewRatingSession(7, "Heat", "heat.jpg")
		if err := r.BeginSubmit(); !errors.Is(err, shared.ErrRatingRequired) {
			t.Errorf("expected ErrRatingRequired, got %v", err)
		}
		if r.Submitting() {
			t.Error("rejected submit must not mark the session mid-flight")
		}
	})

	t.Run("Submit Guard", func(t *testing.T) {
		r := NewRatingSession(7, "Heat", "heat.jpg")
		r.SetRating(6)

		if err := r.BeginSubmit(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !r.Submitting() {
			t.Error("expected session mid-flight")
		}
		r.EndSubmit()
		if r.Submitting() {
			t.Error("expected session re-enabled")
		}
	})

	t.Run("Payload Trims Comment", func(t *testing.T) {
		r := NewRatingSession(7, "Heat", "heat.jpg")
		r.SetRating(9)
		r.SetComment("  slick  ")

		payload := r.Payload()
		if payload.MovieID != 7 || payload.Rating != 9 || payload.Comment != "slick" {
			t.Errorf("unexpected payload %+v", payload)
		}
	})
}
