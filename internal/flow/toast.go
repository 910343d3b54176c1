package flow

import (
	"time"

	"github.com/senflix/sfx/internal/shared"
)

// ToastLevel grades a notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// ToastSlot names a display location. Each slot shows at most one toast;
// a new one replaces the old, never queues behind it.
type ToastSlot int

const (
	SlotGlobal ToastSlot = iota // corner of the main view
	SlotModal                   // inline area inside an open dialog
)

// Auto-dismiss durations. Modal errors linger longer so they can be read
// before the dialog is acted on.
const (
	ToastDuration      = 3 * time.Second
	ModalErrorDuration = 5 * time.Second
)

// Fixed notification texts.
const (
	MsgMovieAdded    = "Movie added successfully!"
	MsgRatingSaved   = "Rating saved successfully!"
	MsgSearchFailed  = "Search failed. Please try again."
	MsgRequestFailed = "Something went wrong. Please try again."
)

// Toast is one transient notification.
type Toast struct {
	ID      string
	Level   ToastLevel
	Message string
	Slot    ToastSlot
}

// Duration returns how long the toast stays before auto-dismissing.
func (t Toast) Duration() time.Duration {
	if t.Slot == SlotModal && t.Level == ToastError {
		return ModalErrorDuration
	}
	return ToastDuration
}

// Notifier owns the active toast per slot. Dismissal is keyed by toast id
// so an expiry timer for a replaced toast cannot take down its successor.
type Notifier struct {
	active map[ToastSlot]Toast
}

func NewNotifier() *Notifier {
	return &Notifier{active: make(map[ToastSlot]Toast)}
}

// Show replaces the slot's toast and returns the new one; the caller arms
// an expiry timer for it tagged with its id.
func (n *Notifier) Show(slot ToastSlot, level ToastLevel, message string) Toast {
	toast := Toast{
		ID:      shared.GenerateID(),
		Level:   level,
		Message: message,
		Slot:    slot,
	}
	n.active[slot] = toast
	return toast
}

// Dismiss removes the slot's toast only when the id still matches, so a
// stale timer is a no-op. Reports whether anything was removed.
func (n *Notifier) Dismiss(slot ToastSlot, id string) bool {
	toast, ok := n.active[slot]
	if !ok || toast.ID != id {
		return false
	}
	delete(n.active, slot)
	return true
}

// Active returns the slot's toast, if any.
func (n *Notifier) Active(slot ToastSlot) (Toast, bool) {
	toast, ok := n.active[slot]
	return toast, ok
}

// Clear empties a slot unconditionally, as when its dialog closes.
func (n *Notifier) Clear(slot ToastSlot) {
	delete(n.active, slot)
}
