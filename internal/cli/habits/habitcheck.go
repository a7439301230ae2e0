package habits

import (
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/constants"
)

type HabitCheckCmd struct {
	ID   string `arg:"" help:"Habit ID (or unique prefix)."`
	Date string `short:"d" help:"Date to toggle (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitCheckCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
	}
	return nil
}

func (c *HabitCheckCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.ID)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = app.Today()
	}

	updated, ok := ctx.Service.ToggleHabitCompletion(habit.ID, date)
	if !ok {
		return fmt.Errorf("failed to toggle habit %s", c.ID)
	}

	state := "unchecked"
	if updated.CompletedOn(date) {
		state = "checked"
	}
	fmt.Printf("%s %q for %s (streak %d)\n", state, updated.Title, date, updated.Streak)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID (or unique prefix) to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.ResolveHabit(c.ID)
	if err != nil {
		return err
	}
	if !ctx.Service.DeleteHabit(habit.ID) {
		return fmt.Errorf("failed to delete habit %s", c.ID)
	}
	fmt.Printf("Deleted habit: %s (ID: %s)\n", habit.Title, cli.ShortID(habit.ID))
	return nil
}
