// Package registry is the in-memory authoritative store for the habit
// dataset. A Registry owns one HabitData value; every mutation goes through
// a pure (data, action) -> data function so the transition logic is
// testable in isolation. There are no package-level globals.
package registry

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"habitly/internal/constants"
	"habitly/internal/models"
)

type Registry struct {
	data models.HabitData
}

// New returns a registry holding the default empty dataset.
func New() *Registry {
	return &Registry{data: models.DefaultData(time.Now())}
}

// SetAll replaces habits, entries and the sync timestamp wholesale.
// Used to hydrate the registry after a load.
func (r *Registry) SetAll(data models.HabitData) {
	r.data = data
}

// Add appends a habit as-is. Callers that want defaults filled in should
// use NewHabit instead.
func (r *Registry) Add(h models.Habit) {
	r.data = addHabit(r.data, h)
}

// NewHabit constructs a habit with a fresh id, creation timestamp and the
// next palette color, appends it and returns it.
func (r *Registry) NewHabit(name string, typ models.HabitType, now time.Time) models.Habit {
	h := models.Habit{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Type:      typ,
		Frequency: models.FrequencyDaily,
		Color:     constants.Palette[len(r.data.Habits)%len(constants.Palette)],
		CreatedAt: models.Timestamp(now),
		Archived:  false,
	}
	r.Add(h)
	return h
}

// Update merges the patch into the habit with the given id; no-op if absent.
func (r *Registry) Update(id string, patch HabitPatch) {
	r.data = updateHabit(r.data, id, patch)
}

// Delete removes the habit and all entries referencing it.
func (r *Registry) Delete(id string) {
	r.data = deleteHabit(r.data, id)
}

// Toggle flips the entry for (habitID, date), creating it as occurred=true
// on first toggle.
func (r *Registry) Toggle(habitID, date string) {
	r.data = toggleEntry(r.data, habitID, date)
}

// Snapshot returns a copy of the current dataset for persistence. The
// returned slices are clones, so later mutations don't leak into an
// in-flight save.
func (r *Registry) Snapshot() models.HabitData {
	return models.HabitData{
		Habits:       slices.Clone(r.data.Habits),
		Entries:      slices.Clone(r.data.Entries),
		LastSyncedAt: r.data.LastSyncedAt,
	}
}

// Habits returns the habit list in insertion order.
func (r *Registry) Habits() []models.Habit {
	return slices.Clone(r.data.Habits)
}

// Entries returns all recorded entries.
func (r *Registry) Entries() []models.HabitEntry {
	return slices.Clone(r.data.Entries)
}

// Find locates a habit by id or (case-insensitive) name.
func (r *Registry) Find(ref string) (models.Habit, bool) {
	for _, h := range r.data.Habits {
		if h.ID == ref || strings.EqualFold(h.Name, ref) {
			return h, true
		}
	}
	return models.Habit{}, false
}
