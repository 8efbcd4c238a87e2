// Package keygen synthesizes surrogate primary keys for database engines
// without identity columns. Each supported engine implements Strategy; the
// Registry picks the first strategy whose Applies predicate matches the
// active provider identity string.
package keygen

import (
	"context"
	"errors"
)

// ErrSequenceUnavailable marks probe failures that mean "try the next
// candidate": the sequence object does not exist or the session lacks the
// privilege to read it. Any other probe error is fatal for the call.
var ErrSequenceUnavailable = errors.New("sequence does not exist or is not accessible")

// Strategy generates surrogate keys for one family of database engines.
type Strategy interface {
	// Applies reports whether this strategy handles the given provider
	// identity string.
	Applies(provider string) bool

	// Generate produces the next key for table/column. A nil result with a
	// nil error means the engine assigns the key natively on insert and the
	// caller must leave the key field at its zero value.
	Generate(ctx context.Context, table, column string, candidates ...string) (*int64, error)
}

// SequenceStore is the narrow read-only port the sequence strategy uses for
// database round trips, so tests can fake it without a live database.
type SequenceStore interface {
	// ListSequences returns sequence names whose name matches any of the
	// LIKE patterns, in catalog order.
	ListSequences(ctx context.Context, patterns ...string) ([]string, error)

	// NextValue fetches the next value of the named sequence. Returns
	// ErrSequenceUnavailable for missing objects or insufficient privilege.
	NextValue(ctx context.Context, sequence string) (int64, error)

	// MaxKey returns the current maximum of column over table, 0 when the
	// table is empty.
	MaxKey(ctx context.Context, table, column string) (int64, error)
}
