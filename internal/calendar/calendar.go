// Package calendar generates the week, month and year date grids used by the
// calendar views. Weeks start on Sunday. All generators are pure: they take a
// reference date and return a fully materialized grid with no retained state.
package calendar

import (
	"time"

	"habitly/internal/models"
)

// WeekDates returns the 7 consecutive dates from the Sunday on or before ref
// through the following Saturday.
func WeekDates(ref time.Time) []time.Time {
	start := models.Day(ref).AddDate(0, 0, -int(ref.Weekday()))
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// MonthWeeks returns the week rows covering the given month. Each row holds
// exactly 7 cells; cells before day 1 and after the last day are nil padding.
// The first row always starts on Sunday.
func MonthWeeks(year int, month time.Month) [][]*time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	offset := int(first.Weekday())

	var weeks [][]*time.Time
	row := make([]*time.Time, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, nil)
	}

	for day := 1; day <= last.Day(); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		row = append(row, &d)
		if len(row) == 7 {
			weeks = append(weeks, row)
			row = make([]*time.Time, 0, 7)
		}
	}

	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, nil)
		}
		weeks = append(weeks, row)
	}

	return weeks
}

// MonthGrid is one month's week rows tagged with its month.
type MonthGrid struct {
	Month time.Month
	Weeks [][]*time.Time
}

// YearMonths returns the 12 month grids for the given year, January first.
func YearMonths(year int) []MonthGrid {
	months := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, MonthGrid{Month: m, Weeks: MonthWeeks(year, m)})
	}
	return months
}

// PrevWeek and NextWeek step the reference date by a whole week.
func PrevWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, -7) }
func NextWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, 7) }

// PrevMonth and NextMonth step by one calendar month. The day of month may
// be normalized by the underlying date arithmetic (e.g. Jan 31 -> Mar 3).
func PrevMonth(ref time.Time) time.Time { return ref.AddDate(0, -1, 0) }
func NextMonth(ref time.Time) time.Time { return ref.AddDate(0, 1, 0) }

func PrevYear(ref time.Time) time.Time { return ref.AddDate(-1, 0, 0) }
func NextYear(ref time.Time) time.Time { return ref.AddDate(1, 0, 0) }

// MonthName returns the long English month name.
func MonthName(m time.Month) string { return m.String() }

// ShortMonthName returns the three-letter month abbreviation.
func ShortMonthName(m time.Month) string { return m.String()[:3] }

// DayName returns the three-letter weekday abbreviation, Sunday = 0.
func DayName(wd time.Weekday) string { return wd.String()[:3] }

// IsFuture reports whether d falls strictly after now's calendar day.
func IsFuture(d, now time.Time) bool {
	return models.DayAfter(d, now)
}

// IsToday reports whether d falls on now's calendar day.
func IsToday(d, now time.Time) bool {
	return models.SameDay(d, now)
}
