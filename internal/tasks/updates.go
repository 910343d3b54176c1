package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	QueueQueries Phase = iota
	RunSearch
	WriteExport
)

func (p Phase) String() string {
	switch p {
	case QueueQueries:
		return "queue_queries"
	case RunSearch:
		return "run_search"
	case WriteExport:
		return "write_export"
	default:
		return ""
	}
}

func queueQueriesUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueueQueries,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Queuing %d saved queries...", total),
	}
}

func runSearchUpdate(step, total int, query string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RunSearch,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Searching: %s...", step, total, query),
	}
}

func exportCompletedUpdate(step, total int, query string, resultCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteExport,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d results)", step, total, query, resultCount),
	}
}

func exportFailedUpdate(step, total int, query string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteExport,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, query, err),
	}
}
