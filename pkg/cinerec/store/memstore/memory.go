package memstore

import (
	"context"
	"fmt"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Store is a slice-backed implementation of store.Store.
type Store struct {
	facts []catalog.Fact
	ids   map[string]struct{}
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Assert appends facts, rejecting the whole batch on a duplicate ID.
func (s *Store) Assert(ctx context.Context, facts ...catalog.Fact) error {
	batch := make(map[string]struct{}, len(facts))
	for _, f := range facts {
		_, exists := s.ids[f.ID]
		_, repeated := batch[f.ID]
		if exists || repeated {
			return fmt.Errorf("fact %q: %w", f.ID, internalerr.ErrDuplicate)
		}
		batch[f.ID] = struct{}{}
	}

	for _, f := range facts {
		s.ids[f.ID] = struct{}{}
		s.facts = append(s.facts, f)
	}
	return nil
}

// Facts returns a copy of the facts in insertion order.
func (s *Store) Facts(ctx context.Context) ([]catalog.Fact, error) {
	out := make([]catalog.Fact, len(s.facts))
	copy(out, s.facts)
	return out, nil
}

// Len returns the number of facts.
func (s *Store) Len(ctx context.Context) (int, error) { return len(s.facts), nil }
