// Package search provides a small, deterministic text-matching helper for
// the recipe search feed. It is intentionally tiny:
//
//   - No logging in the library (callers decide how/what to log)
//   - Unicode-aware case folding via golang.org/x/text (not ASCII lowering)
//   - Pure functions, safe for concurrent use
//
// The search feed is a containment filter over entity fields rather than a
// ranked index, so matching reduces to fold-and-contains.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s in Unicode case-folded form, suitable for caseless
// comparison. Folding handles cases ASCII lowering misses (e.g. İ, ß).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Query is a pre-folded search term. Normalizing once per request avoids
// re-folding the needle against every candidate row.
type Query struct {
	folded string
}

// NewQuery trims and folds a raw user query. An all-whitespace query folds
// to the empty query, which matches everything.
func NewQuery(raw string) Query {
	return Query{folded: Fold(strings.TrimSpace(raw))}
}

// Empty reports whether the query has no searchable content.
func (q Query) Empty() bool { return q.folded == "" }

// MatchesAny reports whether the query occurs, caselessly, in at least one
// of the given fields. An empty query matches any input.
func (q Query) MatchesAny(fields ...string) bool {
	if q.folded == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q.folded) {
			return true
		}
	}
	return false
}
