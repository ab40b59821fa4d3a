package render

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
)

type jsonRenderer struct{}

// Render writes the card as indented JSON.
func (jsonRenderer) Render(w io.Writer, c cards.Card) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
