package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Movie is one catalog record. Values are immutable once the catalog is built.
type Movie struct {
	Title  string  `json:"title"`
	Genre  Genre   `json:"genre"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// ID returns the normalized identifier used for the movie's fact.
func (m Movie) ID() string { return Identifier(m.Title) }

// Describe renders "Title (genre, year, rating)".
func (m Movie) Describe() string {
	return fmt.Sprintf("%s (%s, %d, %s)", m.Title, m.Genre, m.Year, FormatRating(m.Rating))
}

// Fact projects the movie into the fact store.
func (m Movie) Fact() Fact {
	return Fact{ID: m.ID(), Genre: m.Genre, Year: m.Year, Rating: m.Rating}
}

// Fact is the normalized-name projection of a Movie asserted into the fact
// store: pelicula(ID, Genre, Year, Rating).
type Fact struct {
	ID     string  `json:"id"`
	Genre  Genre   `json:"genre"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// Catalog is an immutable, ordered list of movies.
type Catalog struct {
	movies []Movie
	index  map[string]int
}

// New builds a catalog from movies, keeping their order. Every movie needs a
// known genre, a rating in [0, 10] and a title whose identifier is unique.
func New(movies ...Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		index:  make(map[string]int, len(movies)),
	}

	for i, m := range movies {
		id := m.ID()
		if id == "" {
			return nil, fmt.Errorf("movie %d: empty title: %w", i, internalerr.ErrInvalidInput)
		}
		if !m.Genre.Valid() {
			return nil, fmt.Errorf("movie %q: unknown genre %q: %w", m.Title, m.Genre, internalerr.ErrInvalidInput)
		}
		if m.Rating < 0 || m.Rating > 10 {
			return nil, fmt.Errorf("movie %q: rating %v out of range [0, 10]: %w", m.Title, m.Rating, internalerr.ErrInvalidInput)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("movie %q: identifier %q: %w", m.Title, id, internalerr.ErrDuplicate)
		}
		c.index[id] = len(c.movies)
		c.movies = append(c.movies, m)
	}

	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int { return len(c.movies) }

// Movies returns a copy of the movies in catalog order.
func (c *Catalog) Movies() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Facts returns the fact projection of every movie, in catalog order.
func (c *Catalog) Facts() []Fact {
	out := make([]Fact, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Fact()
	}
	return out
}

// Lookup finds a movie by its identifier.
func (c *Catalog) Lookup(id string) (Movie, bool) {
	i, ok := c.index[id]
	if !ok {
		return Movie{}, false
	}
	return c.movies[i], true
}

// Identifier lowercases a title, drops apostrophes and joins the remaining
// alphanumeric runs with underscores: "Schindler's List" -> "schindlers_list".
func Identifier(title string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r == '\'' || r == '’':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
		default:
			sep = true
		}
	}
	return b.String()
}

// FormatRating prints a rating with at least one decimal: 9 -> "9.0".
func FormatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
