package store

import (
	"context"
	"fmt"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
)

// Store is the fact store: the ordered set of pelicula facts rule engines
// evaluate against.
type Store interface {
	Close() error

	// Assert appends facts in order. A fact whose ID is already present
	// fails with internalerr.ErrDuplicate and nothing from that call is kept.
	Assert(ctx context.Context, facts ...catalog.Fact) error

	// Facts returns every fact in insertion order.
	Facts(ctx context.Context) ([]catalog.Fact, error)

	Len(ctx context.Context) (int, error)
}

// Seed asserts the fact projection of every catalog movie.
func Seed(ctx context.Context, s Store, cat *catalog.Catalog) error {
	if err := s.Assert(ctx, cat.Facts()...); err != nil {
		return fmt.Errorf("seed fact store: %w", err)
	}
	return nil
}
