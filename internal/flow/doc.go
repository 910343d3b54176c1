// Package flow implements the interaction core as plain state machines,
// decoupled from any rendering layer.
//
// Each session type owns its state explicitly instead of scattering it
// through UI callbacks:
//
//  1. [WizardSession] : the four-step add-movie flow (search, confirm,
//     preferences, categories) with per-step transition guards and the
//     select-result shortcut
//  2. [SearchSession] : debounced incremental search with sequence-numbered
//     staleness checks and cancellation of superseded requests
//  3. [ToggleController] : per-(movie, action) state map with a reentrancy
//     guard and server-authoritative reconciliation
//  4. [RatingSession] : fetch-existing, edit, submit rating flow
//  5. [Notifier] : replace-not-queue transient feedback with fixed
//     auto-dismiss durations
//
// All sessions are driven from a single event loop; none are safe for
// concurrent use. Network work happens outside the package: callers issue
// requests, then feed results back through Resolve/Fail/Prefill style
// methods so the server's declared state always wins over local guesses.
package flow
