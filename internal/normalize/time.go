package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the canonical stored time format.
const TimeLayout = "15:04"

var (
	ErrTimeRequired = errors.New("time required")
	ErrInvalidTime  = errors.New("invalid time")
)

// Clock strings are parsed as the time of day on this date.
const referenceDate = "2000-01-01"

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"3 PM",
	"3PM",
}

// H:MM, H.MM or HhMM with an optional am/pm suffix.
var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2})[:.h](\d{2})\s*(am|pm)?$`)

// Time returns s as a zero-padded 24-hour HH:MM.
func Time(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrTimeRequired
	}
	hour, minute, ok := parseClock(s)
	if !ok {
		hour, minute, ok = matchClock(s)
	}
	if !ok || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

func parseClock(s string) (hour, minute int, ok bool) {
	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation(DateLayout+" "+layout, referenceDate+" "+s, time.UTC)
		if err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

func matchClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}
	return hour, minute, true
}
