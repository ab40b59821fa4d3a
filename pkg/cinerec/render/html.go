package render

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
)

type htmlRenderer struct{}

// Render writes the card as an HTML <section> fragment.
func (htmlRenderer) Render(w io.Writer, c cards.Card) error {
	section := element(atom.Section,
		html.Attribute{Key: "class", Val: "card card-" + string(c.Kind)},
		html.Attribute{Key: "id", Val: c.ID},
	)

	h2 := element(atom.H2)
	h2.AppendChild(text(c.Title))
	section.AppendChild(h2)

	if len(c.Criteria) > 0 {
		ul := element(atom.Ul, html.Attribute{Key: "class", Val: "criteria"})
		for _, cr := range c.Criteria {
			li := element(atom.Li)
			strong := element(atom.Strong)
			strong.AppendChild(text(cr.Label + ":"))
			li.AppendChild(strong)
			li.AppendChild(text(" " + cr.Value))
			ul.AppendChild(li)
		}
		section.AppendChild(ul)
	}

	if c.Empty {
		p := element(atom.P, html.Attribute{Key: "class", Val: "empty"})
		p.AppendChild(text(emptyMessage(c.Kind)))
		section.AppendChild(p)
	} else {
		ol := element(atom.Ol, html.Attribute{Key: "class", Val: "results"})
		for _, item := range c.Items {
			li := element(atom.Li)
			li.AppendChild(text(item))
			ol.AppendChild(li)
		}
		section.AppendChild(ol)
	}

	if err := html.Render(w, section); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
