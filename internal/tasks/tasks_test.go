package tasks

import (
	"testing"

	tu "github.com/senflix/sfx/internal/testing"
)

func TestPhaseString(t *testing.T) {
	cases := []struct {
		phase Phase
		want  string
	}{
		{QueueQueries, "queue_queries"},
		{RunSearch, "run_search"},
		{WriteExport, "write_export"},
		{Phase(99), ""},
	}

	for _, tc := range cases {
		if got := tc.phase.String(); got != tc.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

func TestSendProgress(t *testing.T) {
	engine := NewSearchExporter(&tu.MockService{})

	t.Run("nil channel does not block", func(t *testing.T) {
		engine.sendProgress(nil, ProgressUpdate{Phase: RunSearch, Message: "test"})
	})

	t.Run("delivers update to buffered channel", func(t *testing.T) {
		progress := make(chan ProgressUpdate, 1)
		update := ProgressUpdate{Phase: RunSearch, Step: 1, Total: 2, Message: "searching"}

		engine.sendProgress(progress, update)

		select {
		case got := <-progress:
			if got.Message != "searching" {
				t.Errorf("expected message %q, got %q", "searching", got.Message)
			}
			if got.Phase != RunSearch {
				t.Errorf("expected phase RunSearch, got %v", got.Phase)
			}
		default:
			t.Fatal("expected update on channel")
		}
	})

	t.Run("full channel is skipped without blocking", func(t *testing.T) {
		progress := make(chan ProgressUpdate, 1)
		progress <- ProgressUpdate{Message: "first"}

		engine.sendProgress(progress, ProgressUpdate{Message: "second"})

		got := <-progress
		if got.Message != "first" {
			t.Errorf("expected first update to remain, got %q", got.Message)
		}
		select {
		case extra := <-progress:
			t.Errorf("expected no second update, got %q", extra.Message)
		default:
		}
	})
}
