package prolog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ichiban/prolog"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
)

// Engine answers rule queries with an embedded Prolog interpreter holding
// pelicula/4 facts and the five recommendation clauses.
type Engine struct {
	p *prolog.Interpreter
}

// New asserts facts in order, followed by every rule clause.
func New(ctx context.Context, facts []catalog.Fact) (*Engine, error) {
	return Load(ctx, Program(facts))
}

// Load consults a Prolog program text. Clause order is answer order.
func Load(ctx context.Context, program string) (*Engine, error) {
	p := prolog.New(nil, nil)
	if err := p.ExecContext(ctx, program); err != nil {
		return nil, fmt.Errorf("load prolog program: %w", err)
	}
	return &Engine{p: p}, nil
}

// Program renders facts and rules as Prolog text:
//
//	pelicula(interstellar, ciencia_ficcion, 2014, 8.6).
//	...
//	recomendar_excelente(Pelicula) :- pelicula(Pelicula, _, _, Rating), Rating >= 8.5.
func Program(facts []catalog.Fact) string {
	var b strings.Builder
	for _, f := range facts {
		fmt.Fprintf(&b, "pelicula(%s, %s, %d, %s).\n",
			Atom(f.ID), Atom(string(f.Genre)), f.Year, catalog.FormatRating(f.Rating))
	}
	for _, r := range inference.Rules() {
		b.WriteString(r.Clause)
		b.WriteByte('\n')
	}
	return b.String()
}

// Query solves the rule goal and collects every binding of Pelicula.
func (e *Engine) Query(ctx context.Context, q inference.Query) ([]string, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	goal, args := goalWithPlaceholders(q)
	sols, err := e.p.QueryContext(ctx, goal, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Rule, err)
	}
	defer sols.Close()

	out := []string{}
	for sols.Next() {
		var s struct {
			Pelicula string `prolog:"Pelicula"`
		}
		if err := sols.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan %s answer: %w", q.Rule, err)
		}
		out = append(out, s.Pelicula)
	}
	if err := sols.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Rule, err)
	}
	return out, nil
}

// Close implements inference.Engine.
func (e *Engine) Close() error { return nil }

// goalWithPlaceholders builds the goal text with numeric parameters passed
// as ? arguments so they never go through Go float formatting.
func goalWithPlaceholders(q inference.Query) (string, []interface{}) {
	r, _ := inference.Lookup(string(q.Rule))

	terms := []string{"Pelicula"}
	var args []interface{}
	if r.Takes(inference.ParamGenre) {
		terms = append(terms, Atom(string(q.Genre)))
	}
	if r.Takes(inference.ParamMinYear) {
		terms = append(terms, "?")
		args = append(args, q.MinYear)
	}
	if r.Takes(inference.ParamMinRating) {
		terms = append(terms, "?")
		args = append(args, q.MinRating)
	}
	return fmt.Sprintf("%s(%s).", q.Rule, strings.Join(terms, ", ")), args
}

var plainAtom = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)

// Atom renders s as a Prolog atom, quoting it unless it is a plain
// lowercase identifier.
func Atom(s string) string {
	if plainAtom.MatchString(s) {
		return s
	}
	q := strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}
