package registry

import (
	"slices"

	"habitly/internal/models"
)

// HabitPatch is a partial habit update. Nil fields are left untouched.
type HabitPatch struct {
	Name        *string
	Description *string
	Type        *models.HabitType
	Frequency   *models.Frequency
	TargetDays  *[]int
	Color       *string
	CreatedAt   *string
	Archived    *bool
}

// The mutators below are pure: they take a dataset and return a new one,
// cloning the slices they touch. All are total; an absent id is a no-op.

func addHabit(data models.HabitData, h models.Habit) models.HabitData {
	data.Habits = append(slices.Clone(data.Habits), h)
	return data
}

func updateHabit(data models.HabitData, id string, patch HabitPatch) models.HabitData {
	habits := slices.Clone(data.Habits)
	for i, h := range habits {
		if h.ID != id {
			continue
		}
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Description != nil {
			h.Description = *patch.Description
		}
		if patch.Type != nil {
			h.Type = *patch.Type
		}
		if patch.Frequency != nil {
			h.Frequency = *patch.Frequency
		}
		if patch.TargetDays != nil {
			h.TargetDays = *patch.TargetDays
		}
		if patch.Color != nil {
			h.Color = *patch.Color
		}
		if patch.CreatedAt != nil {
			h.CreatedAt = *patch.CreatedAt
		}
		if patch.Archived != nil {
			h.Archived = *patch.Archived
		}
		habits[i] = h
		break
	}
	data.Habits = habits
	return data
}

// deleteHabit removes the habit and cascades removal of every entry that
// references it.
func deleteHabit(data models.HabitData, id string) models.HabitData {
	habits := make([]models.Habit, 0, len(data.Habits))
	for _, h := range data.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	entries := make([]models.HabitEntry, 0, len(data.Entries))
	for _, e := range data.Entries {
		if e.HabitID != id {
			entries = append(entries, e)
		}
	}
	data.Habits = habits
	data.Entries = entries
	return data
}

// toggleEntry flips the occurred flag for an existing (habit, date) entry,
// preserving its note, or records a fresh occurred=true entry. The first
// toggle of a day always means "it happened".
func toggleEntry(data models.HabitData, habitID, date string) models.HabitData {
	entries := slices.Clone(data.Entries)
	for i, e := range entries {
		if e.HabitID == habitID && e.Date == date {
			e.Occurred = !e.Occurred
			entries[i] = e
			data.Entries = entries
			return data
		}
	}
	data.Entries = append(entries, models.HabitEntry{
		HabitID:  habitID,
		Date:     date,
		Occurred: true,
	})
	return data
}
