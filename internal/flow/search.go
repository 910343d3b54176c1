package flow

import (
	"context"
	"strings"
	"time"

	"github.com/senflix/sfx/internal/models"
)

// SearchPhase describes what the results pane should show.
type SearchPhase int

const (
	SearchIdle     SearchPhase = iota // nothing typed yet
	SearchHint                        // below the minimum query length
	SearchWaiting                     // debounce timer armed
	SearchPending                     // request in flight
	SearchDone                        // results (possibly empty) available
	SearchFailed                      // last request errored
)

// HintMinChars is shown while the query sits below the minimum length.
const HintMinChars = "Enter at least 2 characters"

// DefaultDebounce is the pause after the last keystroke before a search
// request fires.
const DefaultDebounce = 500 * time.Millisecond

// SearchSession owns debounced incremental search. Every keystroke bumps a
// sequence number; the debounce timer and the response both carry the
// sequence they were issued for, and anything stale is dropped. At most one
// request is in flight; starting a new one cancels its predecessor.
type SearchSession struct {
	minLen   int
	debounce time.Duration

	query   string
	seq     uint64
	started uint64
	phase   SearchPhase

	cancel  context.CancelFunc
	results []models.MovieCandidate
	err     error
}

// NewSearchSession builds a session with the given minimum query length,
// falling back to sane defaults for non-positive arguments.
func NewSearchSession(minLen int, debounce time.Duration) *SearchSession {
	if minLen <= 0 {
		minLen = 2
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SearchSession{minLen: minLen, debounce: debounce}
}

func (s *SearchSession) Query() string           { return s.query }
func (s *SearchSession) Phase() SearchPhase      { return s.phase }
func (s *SearchSession) Debounce() time.Duration { return s.debounce }

// Results returns the accepted result set for the current query.
func (s *SearchSession) Results() []models.MovieCandidate { return s.results }

// Err returns the error from the last completed request, nil outside the
// failed phase.
func (s *SearchSession) Err() error { return s.err }

// Type records a keystroke and returns the sequence number the caller must
// tag its debounce timer with. Clearing or shortening the query below the
// minimum resets results immediately; no request will fire for it.
func (s *SearchSession) Type(query string) uint64 {
	s.seq++
	s.query = query
	s.results = nil
	s.err = nil

	switch {
	case strings.TrimSpace(query) == "":
		s.phase = SearchIdle
	case len(strings.TrimSpace(query)) < s.minLen:
		s.phase = SearchHint
	default:
		s.phase = SearchWaiting
	}
	return s.seq
}

// ShouldFire reports whether a debounce timer issued for seq is still the
// latest and the query is long enough to search. A timer for a superseded
// sequence must be dropped silently.
func (s *SearchSession) ShouldFire(seq uint64) bool {
	return seq == s.seq && s.phase == SearchWaiting
}

// Start marks the request for seq in flight and derives a context for it,
// cancelling any predecessor still running. The returned sequence must be
// carried on the response and handed back to Accept.
func (s *SearchSession) Start(ctx context.Context, seq uint64) (context.Context, uint64) {
	if s.cancel != nil {
		s.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = seq
	s.phase = SearchPending
	return reqCtx, seq
}

// Accept applies a completed request's outcome. Responses for anything but
// the most recently started sequence are dropped; the session reports
// whether the response was applied.
func (s *SearchSession) Accept(seq uint64, results []models.MovieCandidate, err error) bool {
	if seq != s.started || seq != s.seq {
		return false
	}
	s.cancel = nil
	if err != nil {
		s.phase = SearchFailed
		s.err = err
		s.results = nil
		return true
	}
	s.phase = SearchDone
	s.err = nil
	s.results = results
	return true
}

// Reset clears the session, cancelling any in-flight request. Used when the
// search pane closes.
func (s *SearchSession) Reset() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.query = ""
	s.results = nil
	s.err = nil
	s.phase = SearchIdle
}

// Hint returns the helper text for the current phase, empty when the
// results themselves should be shown.
func (s *SearchSession) Hint() string {
	switch s.phase {
	case SearchHint:
		return HintMinChars
	case SearchWaiting, SearchPending:
		return "Searching..."
	case SearchDone:
		if len(s.results) == 0 {
			return "No results found"
		}
	}
	return ""
}
