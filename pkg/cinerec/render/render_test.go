package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

func filterCard(items ...string) cards.Card {
	return cards.New().Build(cards.KindFilter, "Movies filtered by:", []cards.Criterion{
		{Label: "Genre", Value: "drama"},
		{Label: "Minimum year", Value: "1990"},
		{Label: "Minimum rating", Value: "9.0"},
	}, items)
}

func TestTextRender(t *testing.T) {
	r, err := New(FormatText, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, filterCard("The Shawshank Redemption (drama, 1994, 9.3)")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "Movies filtered by:\n" +
		"- Genre: drama\n" +
		"- Minimum year: 1990\n" +
		"- Minimum rating: 9.0\n" +
		"\n" +
		"RESULTS:\n" +
		strings.Repeat("=", 30) + "\n" +
		"The Shawshank Redemption (drama, 1994, 9.3)\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected text output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextRenderEmpty(t *testing.T) {
	r, _ := New(FormatText, Options{})

	var buf bytes.Buffer
	_ = r.Render(&buf, filterCard())
	if got := buf.String(); got != "No movies matched the criteria.\n" {
		t.Errorf("unexpected output: %q", got)
	}

	buf.Reset()
	_ = r.Render(&buf, cards.New().Build(cards.KindRecommendation, "Recommendations using: recomendar_buena", nil, nil))
	if got := buf.String(); got != "No recommendations found.\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestTextRenderRecommendationBullets(t *testing.T) {
	r, _ := New(FormatText, Options{})
	card := cards.New().Build(cards.KindRecommendation, "Recommendations using: recomendar_genero_rating",
		[]cards.Criterion{{Label: "Genre", Value: "terror"}}, []string{"the_conjuring", "get_out"})

	var buf bytes.Buffer
	_ = r.Render(&buf, card)
	if !strings.HasSuffix(buf.String(), "• the_conjuring\n• get_out\n") {
		t.Errorf("expected bulleted results, got:\n%s", buf.String())
	}
}

func TestJSONRender(t *testing.T) {
	r, _ := New("JSON", Options{})
	card := filterCard("The Shawshank Redemption (drama, 1994, 9.3)")

	var buf bytes.Buffer
	if err := r.Render(&buf, card); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var got cards.Card
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.ID != card.ID || got.Kind != cards.KindFilter || len(got.Items) != 1 || got.Empty {
		t.Errorf("unexpected decoded card: %+v", got)
	}
	if !strings.Contains(buf.String(), `"empty": false`) {
		t.Errorf("expected indented JSON, got:\n%s", buf.String())
	}
}

func TestHTMLRender(t *testing.T) {
	r, _ := New(FormatHTML, Options{})
	card := cards.New().Build(cards.KindFilter, "Movies <filtered>", nil, []string{"Schindler's List (drama, 1993, 8.9)"})

	var buf bytes.Buffer
	if err := r.Render(&buf, card); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<section class="card card-filter" id="` + card.ID + `">`,
		`<h2>Movies &lt;filtered&gt;</h2>`,
		`<ol class="results"><li>Schindler&#39;s List (drama, 1993, 8.9)</li></ol>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML output missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLRenderEmpty(t *testing.T) {
	r, _ := New(FormatHTML, Options{})

	var buf bytes.Buffer
	_ = r.Render(&buf, filterCard())
	if !strings.Contains(buf.String(), `<p class="empty">No movies matched the criteria.</p>`) {
		t.Errorf("expected no-matches paragraph, got:\n%s", buf.String())
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("yaml", Options{})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
