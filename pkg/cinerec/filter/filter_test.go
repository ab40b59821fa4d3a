package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func titles(movies []catalog.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func TestApplyUnboundedReturnsGenreInOrder(t *testing.T) {
	cat := catalog.Default()

	for _, g := range catalog.Genres() {
		got := Apply(cat, Criteria{Genre: g, MinYear: math.MinInt, MinRating: math.Inf(-1)})

		var want []string
		for _, m := range cat.Movies() {
			if m.Genre == g {
				want = append(want, m.Title)
			}
		}

		if diff := cmp.Diff(want, titles(got)); diff != "" {
			t.Errorf("genre %s mismatch (-want +got):\n%s", g, diff)
		}
	}
}

func TestApplyDramaSince1990RatedNine(t *testing.T) {
	got := Apply(catalog.Default(), Criteria{Genre: catalog.Drama, MinYear: 1990, MinRating: 9.0})

	if diff := cmp.Diff([]string{"The Shawshank Redemption"}, titles(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyBoundsAreInclusive(t *testing.T) {
	got := Apply(catalog.Default(), Criteria{Genre: catalog.Horror, MinYear: 2013, MinRating: 7.5})

	if diff := cmp.Diff([]string{"The Conjuring", "Get Out"}, titles(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyIdempotent(t *testing.T) {
	cat := catalog.Default()
	c := Criteria{Genre: catalog.SciFi, MinYear: 2000, MinRating: 7.0}

	first := Apply(cat, c)
	second := Apply(cat, c)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Apply differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Interstellar", "Blade Runner 2049", "Inception", "Ex Machina"}, titles(first)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNoMatches(t *testing.T) {
	got := Apply(catalog.Default(), Criteria{Genre: catalog.Comedy, MinYear: 2020, MinRating: 0})
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", got)
	}
}

func TestParseCriteria(t *testing.T) {
	got, err := ParseCriteria("drama", " 1990 ", "9")
	if err != nil {
		t.Fatalf("ParseCriteria failed: %v", err)
	}
	want := Criteria{Genre: catalog.Drama, MinYear: 1990, MinRating: 9}
	if got != want {
		t.Errorf("ParseCriteria = %+v, want %+v", got, want)
	}
}

func TestParseCriteriaErrors(t *testing.T) {
	tests := []struct {
		name                string
		genre, year, rating string
		field               string
	}{
		{"non numeric year", "drama", "abc", "7.0", "min_year"},
		{"fractional year", "drama", "1990.5", "7.0", "min_year"},
		{"empty year", "drama", "", "7.0", "min_year"},
		{"non numeric rating", "drama", "1990", "high", "min_rating"},
		{"unknown genre", "western", "1990", "7.0", "genre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCriteria(tt.genre, tt.year, tt.rating)
			if !errors.Is(err, internalerr.ErrParse) {
				t.Fatalf("Expected ErrParse, got %v", err)
			}
			var pe *internalerr.ParseError
			if !errors.As(err, &pe) || pe.Field != tt.field {
				t.Errorf("Expected field %s, got %+v", tt.field, pe)
			}
		})
	}
}

func TestParseErrorLeavesCatalogUnchanged(t *testing.T) {
	cat := catalog.Default()
	before := cat.Movies()

	if _, err := ParseCriteria("drama", "abc", "7.0"); err == nil {
		t.Fatal("Expected parse error")
	}

	if diff := cmp.Diff(before, cat.Movies()); diff != "" {
		t.Errorf("catalog changed (-before +after):\n%s", diff)
	}
}
