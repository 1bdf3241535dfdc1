package util

import (
	"fmt"
	"strings"
	"time"
)

// dateFormats are tried in order. Ambiguous all-numeric dates resolve to
// the first layout that accepts them (day-month before month-day), which
// matches how contract dates have been entered historically.
var dateFormats = []string{
	"2006-01-02",      // 2023-01-15
	"02-01-2006",      // 15-01-2023
	"01-02-2006",      // 01-15-2023
	"2006/01/02",      // 2023/01/15
	"02/01/2006",      // 15/01/2023
	"01/02/2006",      // 01/15/2023
	"January 2, 2006", // January 15, 2023
	"2 January 2006",  // 15 January 2023
	"Jan 2, 2006",     // Jan 15, 2023
	"2 Jan 2006",      // 15 Jan 2023
}

// ParseDate parses a contract date in any of the supported formats.
// The time of day is always midnight UTC.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}

// DaysBetween returns the whole days from the calendar date of from to the
// calendar date of to. Negative when to is in the past relative to from.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// DaysUntil returns the whole days from now's calendar date until the given
// date.
func DaysUntil(now, date time.Time) int {
	return DaysBetween(now, date)
}
