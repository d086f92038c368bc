package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habitly/internal/models"
	"habitly/internal/registry"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit, keeping its history."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and all its entries."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Type        string `help:"Habit polarity: positive (build) or negative (quit)." default:"positive" enum:"positive,negative"`
	Description string `help:"Optional description." default:""`
	Frequency   string `help:"Tracking cadence." default:"daily" enum:"daily,weekly,monthly"`
	TargetDays  string `help:"Comma-separated weekday indices 0-6 (Sunday = 0). Reserved for scheduling." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}

	if err := ctx.Hydrate(); err != nil {
		return err
	}

	if _, ok := ctx.Registry.Find(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	targetDays, err := parseTargetDays(c.TargetDays)
	if err != nil {
		return err
	}

	h := ctx.Registry.NewHabit(c.Name, models.HabitType(c.Type), time.Now())
	freq := models.Frequency(c.Frequency)
	ctx.Registry.Update(h.ID, registry.HabitPatch{
		Description: &c.Description,
		Frequency:   &freq,
		TargetDays:  &targetDays,
	})

	if err := ctx.Commit(); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", h.Name, c.Type)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	habits := ctx.Registry.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	shown := 0
	for _, h := range habits {
		if h.Archived && !c.Archived {
			continue
		}
		shown++
		marker := "+"
		if h.Type == models.HabitTypeNegative {
			marker = "-"
		}
		suffix := ""
		if h.Archived {
			suffix = mutedStyle.Render(" [ARCHIVED]")
		}
		created := h.CreatedAt
		if day, ok := h.CreatedDay(); ok {
			created = models.FormatDay(day)
		}
		fmt.Printf("%s %s%s  %s\n", marker, h.Name, suffix, mutedStyle.Render("since "+created))
	}

	if shown == 0 {
		fmt.Println("No habits found.")
	}
	return nil
}

type HabitEditCmd struct {
	Name        string  `arg:"" help:"Habit name or id."`
	Rename      string  `help:"New name." default:""`
	Type        string  `help:"New polarity: positive or negative." default:""`
	Description *string `help:"New description."`
	Created     string  `help:"New creation date (YYYY-MM-DD)." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Name)
	if err != nil {
		return err
	}

	var patch registry.HabitPatch
	if c.Rename != "" {
		patch.Name = &c.Rename
	}
	if c.Type != "" {
		typ := models.HabitType(c.Type)
		if !typ.Valid() {
			return fmt.Errorf("invalid habit type: %s (expected positive or negative)", c.Type)
		}
		patch.Type = &typ
	}
	if c.Description != nil {
		patch.Description = c.Description
	}
	if c.Created != "" {
		day, err := models.ParseDay(c.Created)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Created)
		}
		stamp := models.Timestamp(day)
		patch.CreatedAt = &stamp
	}

	ctx.Registry.Update(h.ID, patch)
	if err := ctx.Commit(); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", h.Name)
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Name)
	if err != nil {
		return err
	}

	archived := true
	ctx.Registry.Update(h.ID, registry.HabitPatch{Archived: &archived})
	if err := ctx.Commit(); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Name)
	if err != nil {
		return err
	}

	ctx.Registry.Delete(h.ID)
	if err := ctx.Commit(); err != nil {
		return err
	}

	fmt.Printf("Deleted habit and its entries: %s\n", h.Name)
	return nil
}

func parseTargetDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday index: %s (expected 0-6)", part)
		}
		days = append(days, n)
	}
	return days, nil
}
