package inference

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Query is a rule invocation. Fields the rule does not take are ignored.
type Query struct {
	Rule      Name
	Genre     catalog.Genre
	MinYear   int
	MinRating float64
}

// Validate checks the rule exists and that every parameter it takes is
// present and well formed.
func (q Query) Validate() error {
	r, err := Lookup(string(q.Rule))
	if err != nil {
		return err
	}
	if r.Name != q.Rule {
		return &internalerr.QueryError{Rule: string(q.Rule), Reason: "rule must be given by canonical name", Suggestion: string(r.Name)}
	}
	if r.Takes(ParamGenre) {
		if q.Genre == "" {
			return &internalerr.QueryError{Rule: string(q.Rule), Reason: "missing genre"}
		}
		if !q.Genre.Valid() {
			return &internalerr.QueryError{Rule: string(q.Rule), Reason: fmt.Sprintf("unknown genre %q", q.Genre)}
		}
	}
	if r.Takes(ParamMinRating) && (math.IsNaN(q.MinRating) || math.IsInf(q.MinRating, 0)) {
		return &internalerr.QueryError{Rule: string(q.Rule), Reason: "min_rating must be a finite number"}
	}
	return nil
}

// rule returns the definition for q. Callers must Validate first.
func (q Query) rule() Rule {
	r, _ := Lookup(string(q.Rule))
	return r
}

// Goal renders the query as the Prolog goal it stands for, with Pelicula as
// the answer variable: recomendar_genero_rating(Pelicula, terror, 7.5).
func (q Query) Goal() string {
	r := q.rule()
	args := []string{"Pelicula"}
	if r.Takes(ParamGenre) {
		args = append(args, string(q.Genre))
	}
	if r.Takes(ParamMinYear) {
		args = append(args, strconv.Itoa(q.MinYear))
	}
	if r.Takes(ParamMinRating) {
		args = append(args, catalog.FormatRating(q.MinRating))
	}
	return fmt.Sprintf("%s(%s)", q.Rule, strings.Join(args, ", "))
}

// Eval applies the rule's Go predicate to facts, keeping their order.
func Eval(q Query, facts []catalog.Fact) ([]string, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	match := q.rule().Match

	out := []string{}
	for _, f := range facts {
		if match(f, q) {
			out = append(out, f.ID)
		}
	}
	return out, nil
}

// ParseQuery builds a Query from the text fields of a recommendation request.
// An unknown rule or a missing or malformed parameter the rule needs yields a
// *internalerr.QueryError.
func ParseQuery(rule, genre, minYear, minRating string) (Query, error) {
	r, err := Lookup(rule)
	if err != nil {
		return Query{}, err
	}
	q := Query{Rule: r.Name}

	if r.Takes(ParamGenre) {
		if strings.TrimSpace(genre) == "" {
			return Query{}, &internalerr.QueryError{Rule: string(r.Name), Reason: "missing genre"}
		}
		g, err := catalog.ParseGenre(genre)
		if err != nil {
			qe := &internalerr.QueryError{Rule: string(r.Name), Reason: fmt.Sprintf("unknown genre %q", strings.TrimSpace(genre))}
			var pe *internalerr.ParseError
			if errors.As(err, &pe) {
				qe.Suggestion = pe.Suggestion
			}
			return Query{}, qe
		}
		q.Genre = g
	}

	if r.Takes(ParamMinYear) {
		s := strings.TrimSpace(minYear)
		if s == "" {
			return Query{}, &internalerr.QueryError{Rule: string(r.Name), Reason: "missing min_year"}
		}
		year, err := strconv.Atoi(s)
		if err != nil {
			return Query{}, &internalerr.QueryError{Rule: string(r.Name), Reason: fmt.Sprintf("malformed min_year %q", minYear)}
		}
		q.MinYear = year
	}

	if r.Takes(ParamMinRating) {
		s := strings.TrimSpace(minRating)
		if s == "" {
			return Query{}, &internalerr.QueryError{Rule: string(r.Name), Reason: "missing min_rating"}
		}
		rating, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Query{}, &internalerr.QueryError{Rule: string(r.Name), Reason: fmt.Sprintf("malformed min_rating %q", minRating)}
		}
		q.MinRating = rating
	}

	if err := q.Validate(); err != nil {
		return Query{}, err
	}
	return q, nil
}
