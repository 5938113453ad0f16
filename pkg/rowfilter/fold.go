package rowfilter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold normalizes s to upper case for comparison.
// Full Unicode mapping is used, so "ß" folds to "SS".
func Fold(s string) string {
	if s == "" {
		return s
	}
	// Casers keep state between calls and must not be shared.
	return cases.Upper(language.Und).String(s)
}

// Match reports whether text contains query, ignoring case.
// An empty query matches any text.
func Match(query, text string) bool {
	return matchFolded(Fold(query), text)
}

func matchFolded(foldedQuery, text string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(Fold(text), foldedQuery)
}
