// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing and growing a movie collection:
//  1. [SearchView] : Debounced incremental search with catalog/addable results,
//     per-movie toggles and the rating shortcut
//  2. [WizardView] : The add-movie flow (confirm, preferences, categories)
//  3. [RatingView] : The rate-movie dialog with stored-rating prefill
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All interaction state lives in the flow package's session types; the Model
// translates key presses into session calls and renders from session state,
// never the other way round. Network work runs in tea.Cmd closures and feeds
// back through typed messages carrying the sequence or id they were issued
// for, so stale answers are dropped in Update.
//
// Keyboard navigation uses arrow keys plus ctrl-chords for the per-movie
// controls, with contextual help displayed via charmbracelet/bubbles/help.
package ui
