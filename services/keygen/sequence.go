package keygen

import (
	"context"
	"errors"
	"strings"

	"nextparkapi/pkg/logger"
)

const (
	// tablePrefix is the conventional table name prefix stripped when
	// deriving sequence name candidates.
	tablePrefix = "TB_"
	// namespace is the schema naming domain used for the prefixed
	// sequence name variants.
	namespace = "NEXTPARK"
)

// SequenceStrategy derives surrogate keys from database sequences for
// engines without identity columns (Oracle). Sequence naming in legacy
// schemas is inconsistent, so it tries the most likely names first, then
// asks the catalog what actually exists, then falls back to a table scan.
type SequenceStrategy struct {
	store SequenceStore
}

// NewSequenceStrategy creates the sequence-derived strategy over the given store.
func NewSequenceStrategy(store SequenceStore) *SequenceStrategy {
	return &SequenceStrategy{store: store}
}

// Applies reports true for every provider without identity columns, i.e.
// anything that is not SQL Server.
func (s *SequenceStrategy) Applies(provider string) bool {
	return !strings.Contains(strings.ToLower(provider), "sqlserver")
}

// Generate resolves the next key for table/column. Candidate sequences are
// probed in order and the first accessible one wins; when none yields a
// value the key falls back to max(column)+1, which returns 1 for an empty
// table. Probe misses are expected and skipped silently; any other database
// error aborts the call.
func (s *SequenceStrategy) Generate(ctx context.Context, table, column string, candidates ...string) (*int64, error) {
	names := deriveCandidates(table, candidates)

	tableName := normalizeName(table)
	suffix := strings.TrimPrefix(tableName, tablePrefix)
	discovered, err := s.store.ListSequences(ctx, "%"+tableName+"%", "%"+suffix+"%")
	if err != nil {
		return nil, err
	}
	names = appendUnique(names, discovered)

	for _, name := range names {
		value, err := s.store.NextValue(ctx, name)
		if err == nil {
			return &value, nil
		}
		if errors.Is(err, ErrSequenceUnavailable) {
			continue
		}
		return nil, err
	}

	logger.Debugf("No usable sequence for table %s, falling back to max(%s)+1", tableName, column)
	max, err := s.store.MaxKey(ctx, tableName, column)
	if err != nil {
		return nil, err
	}
	value := max + 1
	return &value, nil
}

// deriveCandidates builds the ordered, case-insensitively de-duplicated list
// of sequence names to probe. Caller-supplied candidates come first (most
// trusted), followed by the conventional derivations from the table name.
// Pure string work, no I/O.
func deriveCandidates(table string, explicit []string) []string {
	var names []string
	seen := map[string]struct{}{}
	add := func(name string) {
		normalized := normalizeName(name)
		if normalized == "" {
			return
		}
		if _, ok := seen[normalized]; ok {
			return
		}
		seen[normalized] = struct{}{}
		names = append(names, normalized)
	}

	for _, candidate := range explicit {
		add(candidate)
	}

	tableName := normalizeName(table)
	add(tableName + "_SEQ")
	add("SEQ_" + tableName)

	suffix := strings.TrimPrefix(tableName, tablePrefix)
	add(suffix + "_SEQ")
	add("SEQ_" + suffix)
	add("SEQ_" + namespace + "_" + suffix)
	add(namespace + "_" + suffix + "_SEQ")

	return names
}

func appendUnique(names []string, extra []string) []string {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	for _, name := range extra {
		normalized := normalizeName(name)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		names = append(names, normalized)
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
