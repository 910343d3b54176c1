// package tasks implements bulk export operations over saved search queries.
//
// The core abstraction is ExportEngine, which re-runs recorded queries against
// the server and writes the result sets to disk. Operations emit progress
// updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"

	"github.com/senflix/sfx/internal/services"
)

// QueryExportJob is one saved query queued for export.
type QueryExportJob struct {
	Query string
}

// QueryExportResult records the outcome of exporting one query.
type QueryExportResult struct {
	Query       string   `json:"query"`
	ResultCount int      `json:"result_count"`
	Success     bool     `json:"success"`
	Files       []string `json:"files,omitempty"`
	ErrorText   string   `json:"error,omitempty"`
	Error       error    `json:"-"`
}

// BulkExportResult aggregates per-query outcomes for a bulk export run.
type BulkExportResult struct {
	TotalQueries      int                 `json:"total_queries"`
	SuccessfulExports int                 `json:"successful_exports"`
	FailedExports     int                 `json:"failed_exports"`
	OutputDirectory   string              `json:"output_directory"`
	ManifestPath      string              `json:"manifest_path,omitempty"`
	Results           []QueryExportResult `json:"results"`
}

// ExportEngine defines bulk export operations over saved searches.
type ExportEngine interface {
	// BulkExport re-runs each query against the server and writes the result
	// sets to the output directory, one file per query plus a manifest.
	BulkExport(ctx context.Context, progress chan<- ProgressUpdate, queries []string, opts BulkExportOpts) (*BulkExportResult, error)
}

// SearchExporter implements ExportEngine against the SenFlix search endpoint.
type SearchExporter struct {
	svc services.Service
}

var _ ExportEngine = (*SearchExporter)(nil)

// NewSearchExporter creates a new SearchExporter backed by the provided service.
func NewSearchExporter(svc services.Service) *SearchExporter {
	return &SearchExporter{svc: svc}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *SearchExporter) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
