// Package migrate parses a remote or local habit document into the canonical
// HabitData shape, upgrading the one known legacy schema along the way.
// Migration is idempotent: an already-canonical document passes through
// unchanged.
package migrate

import (
	"bytes"
	"encoding/json"
	"time"

	apperrors "habitly/internal/errors"
	"habitly/internal/models"
)

// completion is the legacy per-day record. Older documents wrote `completed`,
// a brief intermediate version wrote `occurred`; either may be present.
type completion struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
	Occurred  *bool  `json:"occurred"`
	Note      string `json:"note"`
}

// document accepts both the canonical and the legacy top-level shape.
// Entries stays raw so that a present-but-empty array is distinguishable
// from an absent key.
type document struct {
	Habits       []models.Habit  `json:"habits"`
	Entries      json.RawMessage `json:"entries"`
	Completions  []completion    `json:"completions"`
	LastSyncedAt string          `json:"lastSyncedAt"`
}

// Document parses raw JSON into canonical HabitData. Rules:
//   - habits missing a type default to positive
//   - a present entries array is used unmodified
//   - otherwise a legacy completions array is translated
//     (occurred takes precedence over completed, both absent means false)
//   - lastSyncedAt is copied through, else stamped with the current time
//
// Unparseable input yields a DataError.
func Document(raw []byte) (models.HabitData, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.HabitData{}, &apperrors.DataError{Err: err}
	}

	habits := make([]models.Habit, len(doc.Habits))
	for i, h := range doc.Habits {
		if h.Type == "" {
			h.Type = models.HabitTypePositive
		}
		habits[i] = h
	}

	entries, err := migrateEntries(doc)
	if err != nil {
		return models.HabitData{}, &apperrors.DataError{Err: err}
	}

	syncedAt := doc.LastSyncedAt
	if syncedAt == "" {
		syncedAt = models.Timestamp(time.Now())
	}

	return models.HabitData{
		Habits:       habits,
		Entries:      entries,
		LastSyncedAt: syncedAt,
	}, nil
}

func migrateEntries(doc document) ([]models.HabitEntry, error) {
	if hasEntries(doc.Entries) {
		var entries []models.HabitEntry
		if err := json.Unmarshal(doc.Entries, &entries); err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []models.HabitEntry{}
		}
		return entries, nil
	}

	entries := make([]models.HabitEntry, 0, len(doc.Completions))
	for _, c := range doc.Completions {
		occurred := false
		switch {
		case c.Occurred != nil:
			occurred = *c.Occurred
		case c.Completed != nil:
			occurred = *c.Completed
		}
		entries = append(entries, models.HabitEntry{
			HabitID:  c.HabitID,
			Date:     c.Date,
			Occurred: occurred,
			Note:     c.Note,
		})
	}
	return entries, nil
}

// hasEntries reports whether the entries key was present with a non-null
// value.
func hasEntries(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
