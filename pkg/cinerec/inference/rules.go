package inference

import (
	"fmt"
	"strings"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
	"github.com/cognicore/cinerec/pkg/cinerec/lexicon"
)

// Name identifies one of the five recommendation rules.
type Name string

const (
	Excellent         Name = "recomendar_excelente"
	Good              Name = "recomendar_buena"
	ByGenre           Name = "recomendar_por_genero"
	ByGenreMinRating  Name = "recomendar_genero_rating"
	ByGenreYearRating Name = "recomendar_completa"
)

// Param names a rule parameter.
type Param string

const (
	ParamGenre     Param = "genre"
	ParamMinYear   Param = "min_year"
	ParamMinRating Param = "min_rating"
)

// Rule is a named, parameterized predicate over facts.
type Rule struct {
	Name        Name
	Alias       string
	Params      []Param
	Description string

	// Clause is the rule as a Prolog clause over pelicula/4.
	Clause string

	// Match is the same predicate in Go.
	Match func(f catalog.Fact, q Query) bool
}

// Takes reports whether the rule needs parameter p.
func (r Rule) Takes(p Param) bool {
	for _, have := range r.Params {
		if have == p {
			return true
		}
	}
	return false
}

var rules = []Rule{
	{
		Name:        Excellent,
		Alias:       "excellent",
		Description: "rating >= 8.5",
		Clause:      "recomendar_excelente(Pelicula) :- pelicula(Pelicula, _, _, Rating), Rating >= 8.5.",
		Match: func(f catalog.Fact, _ Query) bool {
			return f.Rating >= 8.5
		},
	},
	{
		Name:        Good,
		Alias:       "good",
		Description: "7.5 <= rating < 8.5",
		Clause:      "recomendar_buena(Pelicula) :- pelicula(Pelicula, _, _, Rating), Rating >= 7.5, Rating < 8.5.",
		Match: func(f catalog.Fact, _ Query) bool {
			return f.Rating >= 7.5 && f.Rating < 8.5
		},
	},
	{
		Name:        ByGenre,
		Alias:       "by_genre",
		Params:      []Param{ParamGenre},
		Description: "genre = G",
		Clause:      "recomendar_por_genero(Pelicula, Genero) :- pelicula(Pelicula, Genero, _, _).",
		Match: func(f catalog.Fact, q Query) bool {
			return f.Genre == q.Genre
		},
	},
	{
		Name:        ByGenreMinRating,
		Alias:       "by_genre_min_rating",
		Params:      []Param{ParamGenre, ParamMinRating},
		Description: "genre = G and rating >= R",
		Clause:      "recomendar_genero_rating(Pelicula, Genero, RatingMin) :- pelicula(Pelicula, Genero, _, Rating), Rating >= RatingMin.",
		Match: func(f catalog.Fact, q Query) bool {
			return f.Genre == q.Genre && f.Rating >= q.MinRating
		},
	},
	{
		Name:        ByGenreYearRating,
		Alias:       "by_genre_year_rating",
		Params:      []Param{ParamGenre, ParamMinYear, ParamMinRating},
		Description: "genre = G and year >= Y and rating >= R",
		Clause:      "recomendar_completa(Pelicula, Genero, AnioMin, RatingMin) :- pelicula(Pelicula, Genero, Anio, Rating), Anio >= AnioMin, Rating >= RatingMin.",
		Match: func(f catalog.Fact, q Query) bool {
			return f.Genre == q.Genre && f.Year >= q.MinYear && f.Rating >= q.MinRating
		},
	},
}

var ruleNames = func() *lexicon.Lexicon {
	lex := lexicon.New()
	for _, r := range rules {
		lex.AddSynonymGroup(string(r.Name), []string{r.Alias})
	}
	return lex
}()

// Rules returns the five rules in display order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup resolves a rule by canonical name or alias. Unknown names yield a
// *internalerr.QueryError with the closest known name as suggestion.
func Lookup(name string) (Rule, error) {
	canonical, ok := ruleNames.Lookup(name)
	if !ok {
		return Rule{}, &internalerr.QueryError{
			Rule:       strings.TrimSpace(name),
			Reason:     "unknown rule",
			Suggestion: ruleNames.Suggest(name),
		}
	}
	for _, r := range rules {
		if string(r.Name) == canonical {
			return r, nil
		}
	}
	return Rule{}, fmt.Errorf("rule %q registered without definition", canonical)
}
