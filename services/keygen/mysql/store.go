// Package mysql implements the keygen sequence store for MySQL-compatible
// engines, used by development and test deployments (including the in-memory
// test server). MySQL has no sequence objects, so every probe misses and key
// generation always lands on the table scan fallback.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"nextparkapi/services/keygen"
)

// Store issues the table scan fallback query against MySQL. Catalog lookups
// and sequence probes are constant misses.
type Store struct {
	db *sql.DB
}

// NewStore creates a MySQL sequence store over an open connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListSequences always returns an empty catalog; MySQL has no sequence objects.
func (s *Store) ListSequences(ctx context.Context, patterns ...string) ([]string, error) {
	return nil, nil
}

// NextValue always reports the sequence as unavailable.
func (s *Store) NextValue(ctx context.Context, sequence string) (int64, error) {
	return 0, keygen.ErrSequenceUnavailable
}

// MaxKey returns the current maximum of column over table, 0 for an empty table.
func (s *Store) MaxKey(ctx context.Context, table, column string) (int64, error) {
	var max int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(`%s`), 0) FROM `%s`", column, table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return max, nil
}
