package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug.
// "Estudio Bíblico: Juan 3" -> "estudio-biblico-juan-3"
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(ascii)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugDashRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
