package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

// SearchQueryRepository implements [models.Repository] for [models.SearchQuery]
// persistence in the search_history table.
type SearchQueryRepository struct {
	db *sql.DB
}

// NewSearchQueryRepository creates a new [SearchQueryRepository] with the given database connection
func NewSearchQueryRepository(db *sql.DB) *SearchQueryRepository {
	return &SearchQueryRepository{db: db}
}

// Create inserts a new search query into the history with generated ID and sequence
func (r *SearchQueryRepository) Create(query *models.SearchQuery) error {
	if err := query.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "search_history")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	query.SetID(id)

	stmt := `
		INSERT INTO search_history (id, sequence, query, normalized, result_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(stmt, id, sequence, query.Query(), shared.NormalizeQuery(query.Query()),
		query.ResultCount(), query.CreatedAt(), query.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert search query: %w", err)
	}

	return nil
}

// Get retrieves a search query by ID, excluding soft-deleted entries
func (r *SearchQueryRepository) Get(id string) (*models.SearchQuery, error) {
	stmt := `
		SELECT id, sequence, query, result_count, created_at, updated_at, deleted_at
		FROM search_history
		WHERE id = ? AND deleted_at IS NULL
	`

	entry, err := scanSearchQuery(r.db.QueryRow(stmt, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("search query not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}

	return entry, nil
}

// Update modifies an existing history entry in the database
func (r *SearchQueryRepository) Update(query *models.SearchQuery) error {
	if err := query.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now().UTC()
	query.SetUpdatedAt(now)

	stmt := `
		UPDATE search_history
		SET query = ?, normalized = ?, result_count = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(stmt, query.Query(), shared.NormalizeQuery(query.Query()),
		query.ResultCount(), now, query.ID())
	if err != nil {
		return fmt.Errorf("failed to update search query: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("search query not found or already deleted: %s", query.ID())
	}

	return nil
}

// Delete soft-deletes a history entry by ID
func (r *SearchQueryRepository) Delete(id string) error {
	now := time.Now().UTC()

	stmt := `
		UPDATE search_history
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(stmt, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete search query: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("search query not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves history entries matching the given criteria, most recent
// first, excluding soft-deleted entries. Supported criteria: "query" (exact
// normalized match), "limit" (int).
func (r *SearchQueryRepository) List(criteria map[string]any) ([]*models.SearchQuery, error) {
	stmt := `
		SELECT id, sequence, query, result_count, created_at, updated_at, deleted_at
		FROM search_history
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if q, ok := criteria["query"].(string); ok && q != "" {
		stmt += " AND normalized = ?"
		args = append(args, shared.NormalizeQuery(q))
	}

	stmt += " ORDER BY updated_at DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		stmt += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var entries []*models.SearchQuery
	for rows.Next() {
		entry, err := scanSearchQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search query: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

// Record upserts a completed search: a repeat of an already-recorded query
// refreshes its timestamp and result count instead of duplicating the row.
func (r *SearchQueryRepository) Record(query string, resultCount int) error {
	existing, err := r.List(map[string]any{"query": query, "limit": 1})
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		entry := existing[0]
		entry.SetResultCount(resultCount)
		return r.Update(entry)
	}

	return r.Create(models.NewSearchQuery(0, query, resultCount))
}

// Recent returns the latest n history entries.
func (r *SearchQueryRepository) Recent(n int) ([]*models.SearchQuery, error) {
	return r.List(map[string]any{"limit": n})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSearchQuery(row rowScanner) (*models.SearchQuery, error) {
	var (
		id          string
		sequence    int
		query       string
		resultCount int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	if err := row.Scan(&id, &sequence, &query, &resultCount, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	entry := models.NewSearchQuery(sequence, query, resultCount)
	entry.SetID(id)
	entry.SetCreatedAt(createdAt)
	entry.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		entry.SetDeletedAt(&deletedAt.Time)
	}

	return entry, nil
}
