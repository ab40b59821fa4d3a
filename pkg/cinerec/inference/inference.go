package inference

import (
	"context"
)

// Engine answers rule queries over the fact store.
// This interface allows swapping implementations (plain Go predicates,
// an embedded Prolog interpreter, ...). Every implementation must return
// movie identifiers in fact store order.
type Engine interface {
	// Query evaluates the named rule against every fact and returns the
	// identifiers of the facts for which it holds.
	Query(ctx context.Context, q Query) ([]string, error)

	Close() error
}
