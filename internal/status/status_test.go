package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"habitly/internal/models"
	"habitly/internal/status"
)

var now = time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)

// createdAt builds creation timestamps from local wall-clock times so the
// expected creation day is stable under any test timezone.
func createdAt(y int, m time.Month, d int) string {
	return models.Timestamp(time.Date(y, m, d, 8, 30, 0, 0, time.Local))
}

func positiveHabit() models.Habit {
	return models.Habit{
		ID:        "a",
		Name:      "exercise",
		Type:      models.HabitTypePositive,
		Frequency: models.FrequencyDaily,
		CreatedAt: createdAt(2024, time.January, 10),
	}
}

func negativeHabit() models.Habit {
	return models.Habit{
		ID:        "b",
		Name:      "smoking",
		Type:      models.HabitTypeNegative,
		Frequency: models.FrequencyDaily,
		CreatedAt: createdAt(2024, time.January, 10),
	}
}

func entry(habitID, date string, occurred bool) models.HabitEntry {
	return models.HabitEntry{HabitID: habitID, Date: date, Occurred: occurred}
}

func day(s string) time.Time {
	d, err := models.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEvaluatePositivePolarity(t *testing.T) {
	assert := assert.New(t)
	h := positiveHabit()

	entries := []models.HabitEntry{entry("a", "2024-06-14", true)}
	assert.Equal(status.Success, status.Evaluate(h, entries, day("2024-06-14"), now))

	// Flipping occurred flips the status.
	entries[0].Occurred = false
	assert.Equal(status.Failure, status.Evaluate(h, entries, day("2024-06-14"), now))

	// A missing entry counts the same as occurred=false.
	assert.Equal(status.Failure, status.Evaluate(h, nil, day("2024-06-14"), now))
}

func TestEvaluateNegativePolarity(t *testing.T) {
	assert := assert.New(t)
	h := negativeHabit()

	// The undesired act happening is the failure case.
	entries := []models.HabitEntry{entry("b", "2024-06-14", true)}
	assert.Equal(status.Failure, status.Evaluate(h, entries, day("2024-06-14"), now))

	entries[0].Occurred = false
	assert.Equal(status.Success, status.Evaluate(h, entries, day("2024-06-14"), now))

	assert.Equal(status.Success, status.Evaluate(h, nil, day("2024-06-14"), now))
}

func TestEvaluateFutureIsNoData(t *testing.T) {
	assert := assert.New(t)
	h := positiveHabit()

	// Entry data is irrelevant for future dates.
	entries := []models.HabitEntry{entry("a", "2024-06-16", true)}
	assert.Equal(status.NoData, status.Evaluate(h, entries, day("2024-06-16"), now))
}

func TestEvaluateTodayIsEvaluable(t *testing.T) {
	assert := assert.New(t)
	h := positiveHabit()

	assert.Equal(status.Failure, status.Evaluate(h, nil, day("2024-06-15"), now))
}

func TestEvaluateBeforeCreation(t *testing.T) {
	assert := assert.New(t)
	h := positiveHabit() // created 2024-01-10

	// A pre-creation entry is ignored regardless of its occurred flag.
	entries := []models.HabitEntry{entry("a", "2024-01-09", true)}
	assert.Equal(status.BeforeCreation, status.Evaluate(h, entries, day("2024-01-09"), now))

	// The creation day itself is evaluable even though createdAt carries a
	// time of day.
	assert.Equal(status.Failure, status.Evaluate(h, nil, day("2024-01-10"), now))
}

func TestEvaluateTodayEastOfUTC(t *testing.T) {
	assert := assert.New(t)
	h := positiveHabit()

	// 09:00 on June 15 in UTC+10 is still June 14 as a UTC instant; the
	// calendar day, not the instant, decides evaluability.
	aest := time.FixedZone("UTC+10", 10*60*60)
	localNow := time.Date(2024, time.June, 15, 9, 0, 0, 0, aest)

	assert.Equal(status.Failure, status.Evaluate(h, nil, day("2024-06-15"), localNow))
}

func TestEvaluateEveningCreationIsEvaluableSameDay(t *testing.T) {
	assert := assert.New(t)

	// A habit created in the local evening carries a UTC timestamp that can
	// fall on the next calendar day; its creation day is still the local one.
	localNow := time.Date(2024, time.June, 15, 21, 30, 0, 0, time.Local)
	h := positiveHabit()
	h.CreatedAt = models.Timestamp(localNow)

	assert.Equal(status.Failure, status.Evaluate(h, nil, models.Day(localNow), localNow))
}

func TestEvaluateStatusStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("success", status.Success.String())
	assert.Equal("failure", status.Failure.String())
	assert.Equal("no-data", status.NoData.String())
	assert.Equal("before-creation", status.BeforeCreation.String())
}

func TestActiveHabits(t *testing.T) {
	assert := assert.New(t)

	archived := positiveHabit()
	archived.ID = "c"
	archived.Archived = true

	notYetCreated := positiveHabit()
	notYetCreated.ID = "d"
	notYetCreated.CreatedAt = createdAt(2024, time.July, 1)

	habits := []models.Habit{positiveHabit(), negativeHabit(), archived, notYetCreated}
	active := status.ActiveHabits(habits, day("2024-06-15"))

	assert.Len(active, 2)
	assert.Equal("a", active[0].ID)
	assert.Equal("b", active[1].ID)

	// On its creation day the habit becomes active.
	active = status.ActiveHabits(habits, day("2024-07-01"))
	assert.Len(active, 3)
}

func TestProgressMixedPolarities(t *testing.T) {
	assert := assert.New(t)

	// One positive habit done today, one negative habit avoided today
	// (no entry): both count as successes.
	data := models.HabitData{
		Habits:  []models.Habit{positiveHabit(), negativeHabit()},
		Entries: []models.HabitEntry{entry("a", "2024-06-15", true)},
	}

	p := status.Progress(data, day("2024-06-15"), now)
	assert.Equal(2, p.Active)
	assert.Equal(2, p.Successes)
	assert.InDelta(1.0, p.Ratio(), 0.0001)
}

func TestProgressNoActiveHabits(t *testing.T) {
	assert := assert.New(t)

	p := status.Progress(models.HabitData{}, day("2024-06-15"), now)
	assert.Equal(0, p.Active)
	assert.Zero(p.Ratio())
}
