package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Renderer writes a card to w.
type Renderer interface {
	Render(w io.Writer, c cards.Card) error
}

// Options configures New.
type Options struct {
	// Color enables lipgloss styling of text output.
	Color bool
}

// New returns the renderer for format.
func New(format Format, opts Options) (Renderer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatText, "":
		return newText(opts.Color), nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatHTML:
		return htmlRenderer{}, nil
	}
	return nil, fmt.Errorf("output format %q: %w", format, internalerr.ErrInvalidConfig)
}

// emptyMessage is the "no matches" line for each kind of card.
func emptyMessage(k cards.Kind) string {
	switch k {
	case cards.KindFilter:
		return "No movies matched the criteria."
	case cards.KindRecommendation:
		return "No recommendations found."
	default:
		return "Nothing to show."
	}
}
