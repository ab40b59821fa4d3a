package prolog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
	"github.com/cognicore/cinerec/pkg/cinerec/inference/simple"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
	"github.com/cognicore/cinerec/pkg/cinerec/store"
	"github.com/cognicore/cinerec/pkg/cinerec/store/memstore"
)

var _ inference.Engine = (*Engine)(nil)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(context.Background(), catalog.Default().Facts())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func TestProgram(t *testing.T) {
	program := Program(catalog.Default().Facts())

	lines := strings.Split(strings.TrimSpace(program), "\n")
	if len(lines) != 24+5 {
		t.Fatalf("Expected 29 clauses, got %d", len(lines))
	}
	if lines[0] != "pelicula(interstellar, ciencia_ficcion, 2014, 8.6)." {
		t.Errorf("unexpected first fact: %s", lines[0])
	}
	if lines[15] != "pelicula(the_dark_knight, accion, 2008, 9.0)." {
		t.Errorf("unexpected fact: %s", lines[15])
	}
	if !strings.HasPrefix(lines[24], "recomendar_excelente(Pelicula) :-") {
		t.Errorf("rules must follow facts, got %s", lines[24])
	}
}

func TestQueryExcellent(t *testing.T) {
	e := newEngine(t)
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
	e := newEngine(t)

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

func TestQueryUnknownRule(t *testing.T) {
	e := newEngine(t)

	_, err := e.Query(context.Background(), inference.Query{Rule: "recomendar_todo"})
	if !errors.Is(err, internalerr.ErrQuery) {
		t.Fatalf("Expected ErrQuery, got %v", err)
	}

	// The knowledge base still answers afterwards.
	got, err := e.Query(context.Background(), inference.Query{Rule: inference.ByGenre, Genre: catalog.Drama})
	if err != nil || len(got) != 5 {
		t.Errorf("Expected 5 dramas after a failed query, got %v, %v", got, err)
	}
}

func TestLoadInvalidProgram(t *testing.T) {
	if _, err := Load(context.Background(), `this is not valid prolog syntax!@#$`); err == nil {
		t.Error("Expected error loading an invalid program")
	}
}

func TestAtom(t *testing.T) {
	tests := map[string]string{
		"the_matrix":        "the_matrix",
		"blade_runner_2049": "blade_runner_2049",
		"2001_a_space":      "'2001_a_space'",
		"Heat":              "'Heat'",
		"o'brien":           `'o\'brien'`,
	}
	for in, want := range tests {
		if got := Atom(in); got != want {
			t.Errorf("Atom(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestQuotedAtomsRoundTrip(t *testing.T) {
	facts := []catalog.Fact{
		{ID: "2001_a_space_odyssey", Genre: catalog.SciFi, Year: 1968, Rating: 8.3},
		{ID: "alien", Genre: catalog.SciFi, Year: 1979, Rating: 8.4},
	}
	e, err := New(context.Background(), facts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := e.Query(context.Background(), inference.Query{Rule: inference.Good})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if diff := cmp.Diff([]string{"2001_a_space_odyssey", "alien"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// TestMatchesSimpleEngine checks both backends give the same answers, in the
// same order, across every rule and a grid of parameters.
func TestMatchesSimpleEngine(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()

	pe, err := New(ctx, cat.Facts())
	if err != nil {
		t.Fatalf("prolog.New failed: %v", err)
	}
	s := memstore.New()
	if err := store.Seed(ctx, s, cat); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	se, err := simple.New(s)
	if err != nil {
		t.Fatalf("simple.New failed: %v", err)
	}

	ratings := []float64{-1, 0, 7.5, 8, 8.55, 9.3, 11}
	years := []int{1900, 1994, 2014, 2100}

	var queries []inference.Query
	for _, r := range inference.Rules() {
		for _, g := range catalog.Genres() {
			for _, rating := range ratings {
				for _, year := range years {
					queries = append(queries, inference.Query{Rule: r.Name, Genre: g, MinYear: year, MinRating: rating})
				}
			}
		}
	}

	for _, q := range queries {
		want, err := se.Query(ctx, q)
		if err != nil {
			t.Fatalf("simple %s: %v", q.Goal(), err)
		}
		got, err := pe.Query(ctx, q)
		if err != nil {
			t.Fatalf("prolog %s: %v", q.Goal(), err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s (-simple +prolog):\n%s", q.Goal(), diff)
		}
	}
}
