package cli

import (
	"fmt"
	"strings"
	"time"

	"habitly/internal/models"
	"habitly/internal/status"
)

type StatusCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	now := time.Now()

	habits := status.ActiveHabits(ctx.Registry.Habits(), day)
	entries := ctx.Registry.Entries()

	fmt.Println(headerStyle.Render(day.Format("Monday, January 2 2006")))

	if len(habits) == 0 {
		fmt.Println("No active habits on this date.")
		return nil
	}

	for _, h := range habits {
		st := status.Evaluate(h, entries, day, now)
		fmt.Printf("  %s %s\n", styleFor(st).Render("●"), statusLine(h, st))
	}

	p := status.Progress(models.HabitData{Habits: ctx.Registry.Habits(), Entries: entries}, day, now)
	fmt.Printf("\n%s %d/%d (%.0f%%)\n", progressBar(p.Ratio(), 20), p.Successes, p.Active, p.Ratio()*100)
	return nil
}

// statusLine labels the outcome in the habit's own terms: a positive habit
// is Done or Missed, a negative one Avoided or Occurred.
func statusLine(h models.Habit, st status.Status) string {
	label := ""
	switch st {
	case status.Success:
		label = "Done"
		if h.Type == models.HabitTypeNegative {
			label = "Avoided"
		}
	case status.Failure:
		label = "Missed"
		if h.Type == models.HabitTypeNegative {
			label = "Occurred"
		}
	case status.NoData:
		label = "No data"
	case status.BeforeCreation:
		label = "Before creation"
	}
	return fmt.Sprintf("%s: %s", h.Name, styleFor(st).Render(label))
}

func progressBar(ratio float64, width int) string {
	filled := int(ratio * float64(width))
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}
