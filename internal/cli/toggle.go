package cli

import (
	"fmt"
	"time"

	"habitly/internal/models"
	"habitly/internal/status"
)

type ToggleCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Name)
	if err != nil {
		return err
	}

	day, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if models.DayAfter(day, time.Now()) {
		return fmt.Errorf("cannot record an entry for a future date")
	}

	dateStr := models.FormatDay(day)
	ctx.Registry.Toggle(h.ID, dateStr)
	if err := ctx.Commit(); err != nil {
		return err
	}

	occurred := status.Occurred(ctx.Registry.Entries(), h.ID, dateStr)
	verb := "not occurred"
	if occurred {
		verb = "occurred"
	}
	fmt.Printf("%s on %s: %s\n", h.Name, dateStr, verb)
	return nil
}
