package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
)

var (
	colorPrimary = lipgloss.Color("#40A967")
	colorMuted   = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

const ruleWidth = 30

type textRenderer struct {
	color bool
}

func newText(color bool) textRenderer { return textRenderer{color: color} }

func (r textRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Render writes the card header, the criteria and either the results or the
// kind's "no matches" line.
func (r textRenderer) Render(w io.Writer, c cards.Card) error {
	var b bytes.Buffer

	if c.Empty && c.Kind != cards.KindCatalog {
		fmt.Fprintln(&b, r.style(mutedStyle, emptyMessage(c.Kind)))
		_, err := w.Write(b.Bytes())
		return err
	}

	fmt.Fprintln(&b, r.style(titleStyle, c.Title))
	for _, cr := range c.Criteria {
		fmt.Fprintf(&b, "- %s %s\n", r.style(labelStyle, cr.Label+":"), cr.Value)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, r.style(labelStyle, "RESULTS:"))
	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))

	bullet := ""
	if c.Kind == cards.KindRecommendation {
		bullet = "• "
	}
	for _, item := range c.Items {
		fmt.Fprintf(&b, "%s%s\n", bullet, item)
	}

	_, err := w.Write(b.Bytes())
	return err
}
