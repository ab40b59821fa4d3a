package filter

import (
	"strconv"
	"strings"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Criteria selects movies of one genre released no earlier than MinYear and
// rated at least MinRating.
type Criteria struct {
	Genre     catalog.Genre
	MinYear   int
	MinRating float64
}

// Match reports whether m satisfies all three predicates.
func (c Criteria) Match(m catalog.Movie) bool {
	return m.Genre == c.Genre && m.Year >= c.MinYear && m.Rating >= c.MinRating
}

// Apply scans the catalog and returns the matching movies in catalog order.
// The result is never nil.
func Apply(cat *catalog.Catalog, c Criteria) []catalog.Movie {
	out := []catalog.Movie{}
	for _, m := range cat.Movies() {
		if c.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// ParseCriteria converts the three text fields of a filter request. Any field
// that cannot be parsed yields a *internalerr.ParseError naming it.
func ParseCriteria(genre, minYear, minRating string) (Criteria, error) {
	g, err := catalog.ParseGenre(genre)
	if err != nil {
		return Criteria{}, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(minYear))
	if err != nil {
		return Criteria{}, &internalerr.ParseError{Field: "min_year", Input: minYear, Err: numErr(err)}
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(minRating), 64)
	if err != nil {
		return Criteria{}, &internalerr.ParseError{Field: "min_rating", Input: minRating, Err: numErr(err)}
	}

	return Criteria{Genre: g, MinYear: year, MinRating: rating}, nil
}

// numErr strips the strconv wrapper, which repeats the input.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
