package simple

import (
	"context"
	"errors"
	"fmt"

	"github.com/cognicore/cinerec/pkg/cinerec/inference"
	"github.com/cognicore/cinerec/pkg/cinerec/store"
)

// Engine evaluates rules as plain Go predicates over the facts of a
// store.Store. The rule set is fixed and non-recursive, so a scan per query
// is the whole evaluation strategy.
type Engine struct {
	store store.Store
}

// New creates an engine reading facts from s. The engine owns s and closes
// it on Close.
func New(s store.Store) (*Engine, error) {
	if s == nil {
		return nil, errors.New("simple engine: nil fact store")
	}
	return &Engine{store: s}, nil
}

// Query returns the identifiers of the facts satisfying q, in store order.
func (e *Engine) Query(ctx context.Context, q inference.Query) ([]string, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	facts, err := e.store.Facts(ctx)
	if err != nil {
		return nil, fmt.Errorf("read facts: %w", err)
	}

	return inference.Eval(q, facts)
}

// Close closes the underlying store.
func (e *Engine) Close() error {
	return e.store.Close()
}
