package keygen

import (
	"context"
	"strings"
)

// IdentityStrategy handles engines with native identity columns (SQL Server).
// It always reports an absent key so the insert lets the engine assign it.
type IdentityStrategy struct{}

// NewIdentityStrategy creates the no-op strategy for identity-column engines.
func NewIdentityStrategy() *IdentityStrategy {
	return &IdentityStrategy{}
}

// Applies reports true when the provider targets SQL Server.
func (s *IdentityStrategy) Applies(provider string) bool {
	return strings.Contains(strings.ToLower(provider), "sqlserver")
}

// Generate always returns an absent key. The IDENTITY column assigns the
// value on insert; no I/O happens here.
func (s *IdentityStrategy) Generate(ctx context.Context, table, column string, candidates ...string) (*int64, error) {
	return nil, nil
}
