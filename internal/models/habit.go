package models

// HabitType is the polarity of a habit: something to build or something to quit.
type HabitType string

const (
	// HabitTypePositive marks a behavior the user wants to establish.
	HabitTypePositive HabitType = "positive"
	// HabitTypeNegative marks a behavior the user wants to avoid.
	HabitTypeNegative HabitType = "negative"
)

// Valid reports whether t is one of the known habit types.
func (t HabitType) Valid() bool {
	return t == HabitTypePositive || t == HabitTypeNegative
}

// Frequency is the cadence a habit is tracked at. It is recorded on the habit
// but not consulted by the status evaluator.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// Habit represents a recurring behavior the user tracks.
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        HabitType `json:"type"`
	Frequency   Frequency `json:"frequency"`
	// TargetDays holds weekday indices 0-6 (Sunday = 0). Reserved for
	// future scheduling; the evaluator ignores it.
	TargetDays []int  `json:"targetDays,omitempty"`
	Color      string `json:"color"`
	// CreatedAt is an ISO-8601 timestamp. Its calendar day is the lower
	// boundary for status evaluation.
	CreatedAt string `json:"createdAt"`
	Archived  bool   `json:"archived"`
}

// HabitEntry records a single day's observation for one habit: whether the
// tracked action physically happened, independent of the habit's polarity.
type HabitEntry struct {
	HabitID  string `json:"habitId"`
	Date     string `json:"date"` // YYYY-MM-DD
	Occurred bool   `json:"occurred"`
	Note     string `json:"note,omitempty"`
}

// HabitData is the full persisted aggregate. Habits keep insertion order;
// entries are unordered. The whole value is replaced on every load and
// overwritten wholesale on every save.
type HabitData struct {
	Habits       []Habit      `json:"habits"`
	Entries      []HabitEntry `json:"entries"`
	LastSyncedAt string       `json:"lastSyncedAt"`
}
