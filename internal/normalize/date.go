package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the canonical stored date format.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned for empty or unparseable dates.
var ErrInvalidDate = errors.New("invalid date")

// monthAbbrev matches abbreviated month names written with a trailing dot or as "Sept".
var monthAbbrev = regexp.MustCompile(`(?i)\b(sept|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\.?(\s)`)

// digitsOnly matches bare numbers; anything longer than YYYYMMDD is not accepted as a date.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// Checked before falling back to dateparse, which guesses ambiguous layouts.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"2006/01/02",
}

// Date parses a date-like string and returns its UTC calendar date as YYYY-MM-DD.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidDate
	}
	if len(s) > 8 && digitsOnly.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := parseDate(canonicalMonths(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC().Format(DateLayout), nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseIn(s, time.UTC)
}

// canonicalMonths rewrites "Sept" and "Jan." style abbreviations to the three-letter form
// time.Parse understands.
func canonicalMonths(s string) string {
	return monthAbbrev.ReplaceAllStringFunc(s, func(m string) string {
		return m[:3] + m[len(m)-1:]
	})
}
