package models

import (
	"fmt"
	"time"
)

// SearchQuery records a navbar/wizard search for the local history. Only the
// query text and its result count are stored, never the movies themselves.
type SearchQuery struct {
	id          string
	sequence    int
	query       string
	resultCount int
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

var _ Model = (*SearchQuery)(nil)

// NewSearchQuery creates a search history entry for the given query text.
func NewSearchQuery(sequence int, query string, resultCount int) *SearchQuery {
	now := time.Now().UTC()
	return &SearchQuery{
		sequence:    sequence,
		query:       query,
		resultCount: resultCount,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (s *SearchQuery) ID() string           { return s.id }
func (s *SearchQuery) Sequence() int        { return s.sequence }
func (s *SearchQuery) Query() string        { return s.query }
func (s *SearchQuery) ResultCount() int     { return s.resultCount }
func (s *SearchQuery) CreatedAt() time.Time { return s.createdAt }
func (s *SearchQuery) UpdatedAt() time.Time { return s.updatedAt }
func (s *SearchQuery) DeletedAt() *time.Time {
	return s.deletedAt
}

func (s *SearchQuery) SetID(id string)           { s.id = id }
func (s *SearchQuery) SetUpdatedAt(t time.Time)  { s.updatedAt = t }
func (s *SearchQuery) SetDeletedAt(t *time.Time) { s.deletedAt = t }
func (s *SearchQuery) SetCreatedAt(t time.Time)  { s.createdAt = t }

func (s *SearchQuery) SetResultCount(n int) {
	s.resultCount = n
	s.updatedAt = time.Now().UTC()
}

// Validate enforces the same minimum-length rule the search box applies:
// queries shorter than two characters never reach the server, so they are
// never recorded either.
func (s *SearchQuery) Validate() error {
	if len(s.query) < 2 {
		return fmt.Errorf("query must be at least 2 characters")
	}
	return nil
}
