package cli

import (
	"fmt"
	"strings"
	"time"

	"habitly/internal/calendar"
	"habitly/internal/models"
	"habitly/internal/status"
)

type CalCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	View string `help:"Calendar view." default:"month" enum:"week,month,year"`
	Date string `help:"Reference date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CalCmd) Run(ctx *Context) error {
	if err := ctx.Hydrate(); err != nil {
		return err
	}

	h, err := ctx.findHabit(c.Name)
	if err != nil {
		return err
	}

	ref, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	now := time.Now()
	entries := ctx.Registry.Entries()

	switch c.View {
	case "week":
		fmt.Println(headerStyle.Render(h.Name))
		printWeekHeader()
		printWeekRow(calendar.WeekDates(ref), h, entries, now)
	case "month":
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s: %s %d", h.Name, calendar.MonthName(ref.Month()), ref.Year())))
		printMonth(calendar.MonthWeeks(ref.Year(), ref.Month()), h, entries, now)
	case "year":
		fmt.Println(headerStyle.Render(fmt.Sprintf("%s: %d", h.Name, ref.Year())))
		for _, grid := range calendar.YearMonths(ref.Year()) {
			fmt.Println(mutedStyle.Render(calendar.ShortMonthName(grid.Month)))
			printMonth(grid.Weeks, h, entries, now)
		}
	}
	return nil
}

func printWeekHeader() {
	names := make([]string, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		names = append(names, calendar.DayName(wd)[:2])
	}
	fmt.Println(mutedStyle.Render(strings.Join(names, " ")))
}

func printWeekRow(dates []time.Time, h models.Habit, entries []models.HabitEntry, now time.Time) {
	cells := make([]string, 0, len(dates))
	for _, d := range dates {
		cells = append(cells, renderDay(d, h, entries, now))
	}
	fmt.Println(strings.Join(cells, " "))
}

func printMonth(weeks [][]*time.Time, h models.Habit, entries []models.HabitEntry, now time.Time) {
	printWeekHeader()
	for _, week := range weeks {
		cells := make([]string, 0, 7)
		for _, d := range week {
			if d == nil {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(*d, h, entries, now))
		}
		fmt.Println(strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

func renderDay(d time.Time, h models.Habit, entries []models.HabitEntry, now time.Time) string {
	st := status.Evaluate(h, entries, d, now)
	cell := fmt.Sprintf("%2d", d.Day())
	if calendar.IsToday(d, now) {
		return todayStyle.Inherit(styleFor(st)).Render(cell)
	}
	return styleFor(st).Render(cell)
}
