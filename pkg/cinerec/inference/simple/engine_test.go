package simple

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
	"github.com/cognicore/cinerec/pkg/cinerec/store"
	"github.com/cognicore/cinerec/pkg/cinerec/store/memstore"
)

var _ inference.Engine = (*Engine)(nil)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newSeeded(t *testing.T) (*Engine, store.Store) {
	t.Helper()
	s := memstore.New()
	if err := store.Seed(context.Background(), s, catalog.Default()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	e, err := New(s)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e, s
}

func TestQueryExcellent(t *testing.T) {
	e, _ := newSeeded(t)
	defer e.Close()

	got, err := e.Query(context.Background(), inference.Query{Rule: inference.Excellent})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	want := []string{
		"interstellar", "the_matrix", "inception", "the_godfather", "forrest_gump",
		"schindlers_list", "the_shawshank_redemption", "goodfellas", "pulp_fiction", "the_dark_knight",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryGenreRating(t *testing.T) {
	e, _ := newSeeded(t)
	defer e.Close()

	got, err := e.Query(context.Background(), inference.Query{
		Rule:      inference.ByGenreMinRating,
		Genre:     catalog.Horror,
		MinRating: 7.5,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if diff := cmp.Diff([]string{"the_conjuring", "get_out"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryUnknownRuleLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	e, s := newSeeded(t)
	defer e.Close()

	before, _ := s.Facts(ctx)

	_, err := e.Query(ctx, inference.Query{Rule: "recomendar_todo"})
	if !errors.Is(err, internalerr.ErrQuery) {
		t.Fatalf("Expected ErrQuery, got %v", err)
	}

	after, _ := s.Facts(ctx)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("fact store changed (-before +after):\n%s", diff)
	}
}

func TestQueryEmptyStore(t *testing.T) {
	e, err := New(memstore.New())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := e.Query(context.Background(), inference.Query{Rule: inference.Good})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no answers from an empty store, got %v", got)
	}
}

func TestNewNilStore(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("Expected error for nil store")
	}
}
