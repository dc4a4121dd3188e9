package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics decomposes the string (NFD), strips combining marks and
// recomposes it, so "Apologética" becomes "Apologetica".
func RemoveDiacritics(input string) string {
	// The transformer chain carries state, so build a fresh one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}

// NormalizeTag canonicalizes a tag for comparison: strip diacritics,
// lowercase, trim. "  Apologética " and "APOLOGETICA" both normalize to
// "apologetica".
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(RemoveDiacritics(tag)))
}

// TagsMatch compares two tags ignoring case and accents. Matching is exact
// after normalization, no substring or fuzzy matching.
func TagsMatch(a, b string) bool {
	return NormalizeTag(a) == NormalizeTag(b)
}
