package domain

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format (expected YYYY-MM-DD)")
)

const dayKeyLayout = "2006-01-02"

// time.Parse alone is too lenient here: it accepts "2024-1-2".
var calendarDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseCalendarDate converts a "YYYY-MM-DD" string into a date pinned at
// local midnight. Record identity is per calendar day, so every date that
// enters the system goes through here.
func ParseCalendarDate(text string) (time.Time, error) {
	if !calendarDateRegex.MatchString(text) {
		return time.Time{}, ErrInvalidDateFormat
	}

	parsed, err := time.ParseInLocation(dayKeyLayout, text, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	return parsed, nil
}

func FormatCalendarDate(date time.Time) string {
	return date.Format(dayKeyLayout)
}

// Midnight truncates a timestamp to 00:00 in its own location, keeping
// comparisons calendar-day based regardless of time-of-day noise.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDay reports whether two timestamps fall on the same calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
