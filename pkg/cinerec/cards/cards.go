package cards

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// Kind tells what produced a card.
type Kind string

const (
	KindFilter         Kind = "filter"
	KindRecommendation Kind = "recommendation"
	KindCatalog        Kind = "catalog"
)

// Builder constructs result cards
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new card builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Card is one answer to a user request: the criteria echoed back and the
// ordered result lines. Empty marks the explicit "no matches" answer.
type Card struct {
	ID       string      `json:"id"`
	Kind     Kind        `json:"kind"`
	Title    string      `json:"title"`
	Criteria []Criterion `json:"criteria,omitempty"`
	Items    []string    `json:"items"`
	Empty    bool        `json:"empty"`
}

// Criterion is one labelled input echoed in a card header.
type Criterion struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Build creates a card; items keep their order.
func (b *Builder) Build(kind Kind, title string, criteria []Criterion, items []string) Card {
	card := Card{
		ID:       ulid.MustNew(ulid.Now(), b.entropy).String(),
		Kind:     kind,
		Title:    title,
		Criteria: criteria,
		Items:    make([]string, len(items)),
		Empty:    len(items) == 0,
	}
	copy(card.Items, items)
	return card
}
