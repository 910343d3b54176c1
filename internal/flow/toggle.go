package flow

import (
	"github.com/senflix/sfx/internal/models"
)

// toggleKey identifies one control: a movie crossed with an action.
type toggleKey struct {
	movieID int
	action  models.Action
}

type toggleState struct {
	value   bool
	prev    bool
	pending bool
}

// ToggleController tracks every toggle control's state in one place and
// renders from it, rather than reading state back out of whatever displayed
// it last. Flips are optimistic; the server's declared state overwrites the
// guess on resolve, and a failure rolls back to the remembered value.
type ToggleController struct {
	states map[toggleKey]*toggleState
}

func NewToggleController() *ToggleController {
	return &ToggleController{states: make(map[toggleKey]*toggleState)}
}

// Seed installs server-declared flags for a movie, as when a page of movie
// cards loads. Nil flags are left untracked.
func (c *ToggleController) Seed(movieID int, flags models.UserFlags) {
	if flags.Watched != nil {
		c.set(movieID, models.ActionWatched, *flags.Watched)
	}
	if flags.Watchlist != nil {
		c.set(movieID, models.ActionWatchlist, *flags.Watchlist)
	}
	if flags.Rated != nil {
		c.set(movieID, models.ActionRate, *flags.Rated)
	}
}

func (c *ToggleController) set(movieID int, action models.Action, value bool) {
	c.states[toggleKey{movieID, action}] = &toggleState{value: value}
}

// State returns the rendered value for a control and whether it is tracked
// at all.
func (c *ToggleController) State(movieID int, action models.Action) (value, known bool) {
	st, ok := c.states[toggleKey{movieID, action}]
	if !ok {
		return false, false
	}
	return st.value, true
}

// Pending reports whether a request for the control is in flight.
func (c *ToggleController) Pending(movieID int, action models.Action) bool {
	st, ok := c.states[toggleKey{movieID, action}]
	return ok && st.pending
}

// Begin optimistically flips a control and marks it in flight. A second
// activation while a request is pending is ignored and reports false; the
// caller must not issue another request for it.
func (c *ToggleController) Begin(movieID int, action models.Action) bool {
	if !action.IsToggle() {
		return false
	}
	key := toggleKey{movieID, action}
	st, ok := c.states[key]
	if !ok {
		st = &toggleState{}
		c.states[key] = st
	}
	if st.pending {
		return false
	}
	st.prev = st.value
	st.value = !st.value
	st.pending = true
	return true
}

// Resolve applies the server's response for an in-flight control. The
// declared new state always wins over the optimistic flip, and any sibling
// flags the server reported are installed for the same movie.
func (c *ToggleController) Resolve(movieID int, action models.Action, newState *bool, flags models.UserFlags) {
	key := toggleKey{movieID, action}
	st, ok := c.states[key]
	if !ok {
		return
	}
	st.pending = false
	if newState != nil {
		st.value = *newState
	}
	c.Seed(movieID, flags)
}

// Fail rolls an in-flight control back to its pre-flip value.
func (c *ToggleController) Fail(movieID int, action models.Action) {
	st, ok := c.states[toggleKey{movieID, action}]
	if !ok {
		return
	}
	st.value = st.prev
	st.pending = false
}
