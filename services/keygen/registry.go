package keygen

import (
	"context"
	"fmt"
)

// Registry holds the process-wide ordered list of key generation strategies.
// It is built once at startup and never mutated; resolution is a linear scan
// where the first matching strategy wins, so registration order is part of
// the contract.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry with the given strategies in evaluation order.
func NewRegistry(strategies ...Strategy) *Registry {
	list := make([]Strategy, len(strategies))
	copy(list, strategies)
	return &Registry{strategies: list}
}

// Resolve returns the first strategy whose predicate matches the provider.
// A provider with no matching strategy is a configuration error.
func (r *Registry) Resolve(provider string) (Strategy, error) {
	for _, s := range r.strategies {
		if s.Applies(provider) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no key generation strategy configured for provider %q", provider)
}

// NextKey resolves the strategy for the provider and generates the next key
// for table/column. A nil key means the engine assigns it natively.
func (r *Registry) NextKey(ctx context.Context, provider, table, column string, candidates ...string) (*int64, error) {
	strategy, err := r.Resolve(provider)
	if err != nil {
		return nil, err
	}
	return strategy.Generate(ctx, table, column, candidates...)
}
