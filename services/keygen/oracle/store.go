// Package oracle implements the keygen sequence store against an Oracle
// database using the go-ora driver underneath database/sql.
package oracle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"nextparkapi/services/keygen"

	"github.com/sijms/go-ora/v2/network"
)

// Oracle error codes treated as recoverable during sequence probing.
const (
	oraSequenceNotExists     = 2289 // ORA-02289: sequence does not exist
	oraTableOrViewNotExists  = 942  // ORA-00942: table or view does not exist
	oraInsufficientPrivilege = 1031 // ORA-01031: insufficient privileges
)

// Store issues the sequence probing, catalog introspection, and table scan
// queries against Oracle.
type Store struct {
	db *sql.DB
}

// NewStore creates an Oracle sequence store over an open connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListSequences queries USER_SEQUENCES for sequences matching any of the
// LIKE patterns, ordered by name.
func (s *Store) ListSequences(ctx context.Context, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	conditions := make([]string, len(patterns))
	args := make([]interface{}, len(patterns))
	for i, pattern := range patterns {
		conditions[i] = fmt.Sprintf("SEQUENCE_NAME LIKE :%d", i+1)
		args[i] = strings.ToUpper(pattern)
	}
	query := "SELECT SEQUENCE_NAME FROM USER_SEQUENCES WHERE " +
		strings.Join(conditions, " OR ") + " ORDER BY SEQUENCE_NAME"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sequence catalog: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// NextValue fetches the next value of the named sequence. Missing sequences
// and privilege errors map to keygen.ErrSequenceUnavailable so the caller
// can move on to the next candidate.
func (s *Store) NextValue(ctx context.Context, sequence string) (int64, error) {
	if !isValidIdentifier(sequence) {
		return 0, keygen.ErrSequenceUnavailable
	}

	var value int64
	query := fmt.Sprintf("SELECT %s.NEXTVAL FROM DUAL", sequence)
	if err := s.db.QueryRowContext(ctx, query).Scan(&value); err != nil {
		if isMissingOrDenied(err) {
			return 0, keygen.ErrSequenceUnavailable
		}
		return 0, err
	}
	return value, nil
}

// MaxKey returns the current maximum of column over table, 0 for an empty table.
func (s *Store) MaxKey(ctx context.Context, table, column string) (int64, error) {
	if !isValidIdentifier(table) || !isValidIdentifier(column) {
		return 0, fmt.Errorf("invalid table or column identifier %q.%q", table, column)
	}

	var max int64
	query := fmt.Sprintf("SELECT NVL(MAX(%s), 0) FROM %s", column, table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func isMissingOrDenied(err error) bool {
	var oraErr *network.OracleError
	if errors.As(err, &oraErr) {
		switch oraErr.ErrCode {
		case oraSequenceNotExists, oraTableOrViewNotExists, oraInsufficientPrivilege:
			return true
		}
	}
	return false
}

// isValidIdentifier accepts unquoted Oracle identifiers only. Sequence and
// table names end up interpolated into SQL, so anything else is rejected.
func isValidIdentifier(name string) bool {
	if name == "" || len(name) > 128 {
		return false
	}
	for _, r := range name {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '_' || r == '$' || r == '#') {
			return false
		}
	}
	return true
}
