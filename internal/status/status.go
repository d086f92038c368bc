// Package status derives the pass/fail classification of a habit on a given
// day from the habit's polarity, its creation date and the recorded entries.
// Every function here is pure and total.
package status

import (
	"time"

	"habitly/internal/models"
)

// Status classifies one (habit, date) pair.
type Status int

const (
	// Success: the day went the habit's way (did it / avoided it).
	Success Status = iota
	// Failure: the day went against the habit.
	Failure
	// NoData: the date is in the future and cannot be evaluated yet.
	NoData
	// BeforeCreation: the date precedes the habit's creation day.
	BeforeCreation
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case NoData:
		return "no-data"
	case BeforeCreation:
		return "before-creation"
	default:
		return "unknown"
	}
}

// Occurred reports whether an entry for (habitID, date) exists with
// occurred=true. A missing entry and occurred=false are equivalent.
func Occurred(entries []models.HabitEntry, habitID, date string) bool {
	for _, e := range entries {
		if e.HabitID == habitID && e.Date == date {
			return e.Occurred
		}
	}
	return false
}

// Evaluate classifies the given date for one habit. Priority order: future
// dates are NoData, dates before the creation day are BeforeCreation, and
// only then is the entry consulted. Today and the creation day itself are
// both evaluable.
func Evaluate(h models.Habit, entries []models.HabitEntry, date, now time.Time) Status {
	if models.DayAfter(date, now) {
		return NoData
	}

	if created, ok := h.CreatedDay(); ok && models.DayBefore(date, created) {
		return BeforeCreation
	}

	occurred := Occurred(entries, h.ID, models.FormatDay(date))
	if h.Type == models.HabitTypeNegative {
		// The undesired act happening is the failure case.
		if occurred {
			return Failure
		}
		return Success
	}
	if occurred {
		return Success
	}
	return Failure
}

// ActiveHabits filters to the habits that count on the reference date:
// not archived, and created on or before it (day granularity).
func ActiveHabits(habits []models.Habit, ref time.Time) []models.Habit {
	active := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Archived {
			continue
		}
		if created, ok := h.CreatedDay(); ok && models.DayBefore(ref, created) {
			continue
		}
		active = append(active, h)
	}
	return active
}

// DayProgress aggregates one day's outcome across the active habit set.
type DayProgress struct {
	Active    int
	Successes int
}

// Ratio returns the success fraction in [0, 1]; zero active habits yield 0.
func (p DayProgress) Ratio() float64 {
	if p.Active == 0 {
		return 0
	}
	return float64(p.Successes) / float64(p.Active)
}

// Progress evaluates every active habit for the reference date and counts
// the successes. It drives the daily progress bar.
func Progress(data models.HabitData, ref, now time.Time) DayProgress {
	active := ActiveHabits(data.Habits, ref)
	p := DayProgress{Active: len(active)}
	for _, h := range active {
		if Evaluate(h, data.Entries, ref, now) == Success {
			p.Successes++
		}
	}
	return p
}
