// Package normalize canonicalizes event fields before they are stored:
// URL slugs derived from titles, calendar dates and 24-hour clock times.
package normalize

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a URL-safe identifier from title: lowercased, trimmed, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, and no leading or
// trailing hyphen. A title without any letters or digits yields "".
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
