package migrate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "habitly/internal/errors"
	"habitly/internal/migrate"
	"habitly/internal/models"
)

func TestDocumentIdempotentOnCanonicalInput(t *testing.T) {
	assert := assert.New(t)

	canonical := models.HabitData{
		Habits: []models.Habit{{
			ID:        "h1",
			Name:      "read",
			Type:      models.HabitTypePositive,
			Frequency: models.FrequencyDaily,
			Color:     "#22c55e",
			CreatedAt: "2024-01-10T08:30:00Z",
		}},
		Entries: []models.HabitEntry{
			{HabitID: "h1", Date: "2024-01-11", Occurred: true, Note: "20 pages"},
		},
		LastSyncedAt: "2024-02-01T12:00:00Z",
	}

	raw, err := json.Marshal(canonical)
	require.NoError(t, err)

	got, err := migrate.Document(raw)
	require.NoError(t, err)
	assert.Equal(canonical, got)
}

func TestDocumentTranslatesLegacyCompletions(t *testing.T) {
	assert := assert.New(t)

	raw := []byte(`{
		"habits": [{"id": "a", "name": "run", "createdAt": "2024-01-01T00:00:00Z"}],
		"completions": [{"habitId": "a", "date": "2024-01-01", "completed": true}],
		"lastSyncedAt": "2024-01-02T00:00:00Z"
	}`)

	got, err := migrate.Document(raw)
	require.NoError(t, err)

	assert.Equal([]models.HabitEntry{
		{HabitID: "a", Date: "2024-01-01", Occurred: true},
	}, got.Entries)
	assert.Equal("2024-01-02T00:00:00Z", got.LastSyncedAt)
}

func TestDocumentCompletionFlagPrecedence(t *testing.T) {
	assert := assert.New(t)

	raw := []byte(`{
		"habits": [],
		"completions": [
			{"habitId": "a", "date": "2024-01-01", "completed": true, "occurred": false},
			{"habitId": "a", "date": "2024-01-02", "completed": false, "occurred": true},
			{"habitId": "a", "date": "2024-01-03"}
		]
	}`)

	got, err := migrate.Document(raw)
	require.NoError(t, err)

	// occurred wins over completed; neither present means false.
	assert.False(got.Entries[0].Occurred)
	assert.True(got.Entries[1].Occurred)
	assert.False(got.Entries[2].Occurred)
}

func TestDocumentDefaultsMissingHabitType(t *testing.T) {
	assert := assert.New(t)

	raw := []byte(`{"habits": [{"id": "a", "name": "old"}], "entries": []}`)

	got, err := migrate.Document(raw)
	require.NoError(t, err)

	assert.Equal(models.HabitTypePositive, got.Habits[0].Type)
}

func TestDocumentPresentEntriesWinOverCompletions(t *testing.T) {
	assert := assert.New(t)

	// A present entries array is used unmodified, even when empty and even
	// when a stale completions array is still around.
	raw := []byte(`{
		"habits": [],
		"entries": [],
		"completions": [{"habitId": "a", "date": "2024-01-01", "completed": true}]
	}`)

	got, err := migrate.Document(raw)
	require.NoError(t, err)

	assert.Empty(got.Entries)
	assert.NotNil(got.Entries)
}

func TestDocumentWithoutEntriesOrCompletions(t *testing.T) {
	assert := assert.New(t)

	got, err := migrate.Document([]byte(`{"habits": []}`))
	require.NoError(t, err)

	assert.NotNil(got.Entries)
	assert.Empty(got.Entries)
	// lastSyncedAt is stamped when absent.
	assert.NotEmpty(got.LastSyncedAt)
}

func TestDocumentNullEntriesFallsBackToCompletions(t *testing.T) {
	assert := assert.New(t)

	raw := []byte(`{
		"habits": [],
		"entries": null,
		"completions": [{"habitId": "a", "date": "2024-01-01", "occurred": true}]
	}`)

	got, err := migrate.Document(raw)
	require.NoError(t, err)

	assert.Len(got.Entries, 1)
	assert.True(got.Entries[0].Occurred)
}

func TestDocumentMalformedJSON(t *testing.T) {
	assert := assert.New(t)

	_, err := migrate.Document([]byte(`{not json`))
	assert.Error(err)

	var dataErr *apperrors.DataError
	assert.True(errors.As(err, &dataErr))
}
