package catalog

import (
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
	"github.com/cognicore/cinerec/pkg/cinerec/lexicon"
)

// Genre is one of the five fixed movie genres. The underlying string is the
// identifier used in facts and rule queries.
type Genre string

const (
	SciFi  Genre = "ciencia_ficcion"
	Drama  Genre = "drama"
	Action Genre = "accion"
	Comedy Genre = "comedia"
	Horror Genre = "terror"
)

var genreNames = func() *lexicon.Lexicon {
	lex := lexicon.New()
	lex.AddSynonymGroup(string(SciFi), []string{"sci-fi", "scifi", "science fiction", "ciencia ficcion"})
	lex.AddSynonymGroup(string(Drama), nil)
	lex.AddSynonymGroup(string(Action), []string{"action"})
	lex.AddSynonymGroup(string(Comedy), []string{"comedy"})
	lex.AddSynonymGroup(string(Horror), []string{"horror"})
	return lex
}()

// Genres returns the five genres in display order.
func Genres() []Genre {
	return []Genre{SciFi, Drama, Action, Comedy, Horror}
}

// ParseGenre resolves a canonical genre identifier or one of its English
// aliases. Unknown input yields a *internalerr.ParseError for field "genre".
func ParseGenre(s string) (Genre, error) {
	canonical, ok := genreNames.Lookup(s)
	if !ok {
		return "", &internalerr.ParseError{
			Field:      "genre",
			Input:      s,
			Suggestion: genreNames.Suggest(s),
			Err:        internalerr.ErrInvalidInput,
		}
	}
	return Genre(canonical), nil
}

// Valid reports whether g is one of the five genres.
func (g Genre) Valid() bool {
	switch g {
	case SciFi, Drama, Action, Comedy, Horror:
		return true
	}
	return false
}

func (g Genre) String() string { return string(g) }
