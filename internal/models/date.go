package models

import (
	"time"

	"habitly/internal/constants"
)

// FormatDay renders t as a canonical YYYY-MM-DD date string.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a canonical YYYY-MM-DD date string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// Day truncates t to its calendar day, dropping the time component.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return FormatDay(a) == FormatDay(b)
}

// DayBefore reports whether a's calendar day falls strictly before b's.
// Days are compared by their formatted dates, each value in its own
// location; comparing the instants would mix a UTC-parsed date with the
// local clock and shift the day boundary.
func DayBefore(a, b time.Time) bool {
	return FormatDay(a) < FormatDay(b)
}

// DayAfter reports whether a's calendar day falls strictly after b's.
func DayAfter(a, b time.Time) bool {
	return FormatDay(a) > FormatDay(b)
}

// Timestamp renders t as the ISO-8601 form used for createdAt and
// lastSyncedAt fields.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp parses an ISO-8601 timestamp, accepting fractional seconds
// and bare dates for tolerance with documents written by older clients.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, constants.DateFormat} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// CreatedDay returns the habit's creation date truncated to a local
// calendar day, so a habit created in the local evening does not land on
// the next day via its UTC timestamp. The second return is false when
// createdAt is missing or unparseable, in which case the habit has no
// lower evaluation boundary.
func (h Habit) CreatedDay() (time.Time, bool) {
	if h.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := ParseTimestamp(h.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return Day(t.In(time.Local)), true
}

// DefaultData returns the empty dataset hydrated when no remote document
// exists or a load fails.
func DefaultData(now time.Time) HabitData {
	return HabitData{
		Habits:       []Habit{},
		Entries:      []HabitEntry{},
		LastSyncedAt: Timestamp(now),
	}
}
