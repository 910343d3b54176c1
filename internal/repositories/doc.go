// Package repositories implements SQLite persistence for the client's local state.
//
// Each repository handles CRUD operations with atomic sequence generation for human-readable ordering.
// All repositories support soft deletes via deleted_at timestamps and exclude deleted records from queries by default.
//
// Key Implementations:
//   - [SearchQueryRepository] : Search history with normalized-query upserts
//
// Movie, category and rating data are deliberately absent: the server owns
// them, and the client re-fetches rather than caching. Only query strings
// and result counts are stored locally.
//
// Sequence numbers provide stable, human-readable ordering independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
