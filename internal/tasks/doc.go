// Package tasks orchestrates long-running export operations with real-time
// progress reporting.
//
// # Core Operations
//
// The [ExportEngine] interface defines one operation:
//
//   - [ExportEngine.BulkExport] : Re-run a batch of saved search queries
//     against the server and write each result set to disk
//   - Queries run through a bounded worker pool with client-side rate limiting
//   - Partial failures are collected, not fatal
//   - A manifest file summarizes the run
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and
// optional data for advanced UI rendering. Updates use select with default
// to prevent blocking.
//
// # Implementation
//
// [SearchExporter] implements [ExportEngine] with dependencies on:
//   - [services.Service] : the SenFlix API client
//   - [formatter] : per-format result-set writers
package tasks
