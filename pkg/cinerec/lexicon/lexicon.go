package lexicon

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Lexicon maps user-facing spellings onto canonical identifiers:
// - Synonyms: an English alias for a canonical name (horror ↔ terror)
// - Variants: spelling forms of the same name (sci-fi, scifi, sci_fi)
//
// Terms are compared after Normalize, so "Sci-Fi " and "sci_fi" are the same
// variant.
type Lexicon struct {
	// canonical -> all variants (including canonical itself)
	synonyms map[string][]string

	// variant -> canonical
	reverseIndex map[string]string

	// canonicals in insertion order
	order []string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// Normalize lowercases a term, trims it and turns runs of spaces and hyphens
// into a single underscore.
func Normalize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	var b strings.Builder
	sep := false
	for _, r := range term {
		if r == ' ' || r == '-' || r == '_' || r == '\t' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// AddSynonymGroup adds a synonym group with a canonical form and its variants.
// The canonical form is always the first entry of the group. Re-adding a
// canonical replaces its previous variants.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	canonical = Normalize(canonical)

	if oldVariants, exists := l.synonyms[canonical]; exists {
		for _, oldV := range oldVariants {
			delete(l.reverseIndex, oldV)
		}
	} else {
		l.order = append(l.order, canonical)
	}

	normalized := make([]string, 0, len(variants)+1)
	seen := map[string]bool{canonical: true}
	normalized = append(normalized, canonical)

	for _, v := range variants {
		v = Normalize(v)
		if v == "" || seen[v] {
			continue
		}
		normalized = append(normalized, v)
		seen[v] = true
	}

	l.synonyms[canonical] = normalized
	for _, v := range normalized {
		l.reverseIndex[v] = canonical
	}
}

// Lookup returns the canonical form of a term and whether the term is known.
//
// Examples:
//   - Lookup("Horror") -> "terror", true
//   - Lookup("western") -> "", false
func (l *Lexicon) Lookup(term string) (string, bool) {
	canonical, ok := l.reverseIndex[Normalize(term)]
	return canonical, ok
}

// Variants returns all known variants of a term (canonical first), or nil if
// the term is unknown.
func (l *Lexicon) Variants(term string) []string {
	canonical, ok := l.Lookup(term)
	if !ok {
		return nil
	}
	out := make([]string, len(l.synonyms[canonical]))
	copy(out, l.synonyms[canonical])
	return out
}

// Canonicals returns every canonical form in the order groups were added.
func (l *Lexicon) Canonicals() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Suggest returns the canonical form whose closest variant is within edit
// distance of term, or "" when nothing is close enough. The allowed distance
// grows with the term: 2 edits, plus one per 4 characters past 8.
func (l *Lexicon) Suggest(term string) string {
	term = Normalize(term)
	if term == "" {
		return ""
	}

	limit := 2
	if n := len(term); n > 8 {
		limit += (n - 8) / 4
	}

	best, bestDist := "", limit+1
	for _, canonical := range l.order {
		for _, v := range l.synonyms[canonical] {
			if d := levenshtein.Distance(term, v, nil); d < bestDist {
				best, bestDist = canonical, d
			}
		}
	}
	return best
}
