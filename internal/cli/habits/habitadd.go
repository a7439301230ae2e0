package habits

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly)." default:"daily"`
	Description string `short:"d" help:"Optional description."`
	Category    string `short:"c" help:"Optional category (spiritual|health|work|personal)."`
}

func (c *HabitAddCmd) Validate() error {
	if !models.ValidFrequency(c.Frequency) {
		return fmt.Errorf("frequency must be daily or weekly, got %q", c.Frequency)
	}
	if c.Category != "" && !models.ValidCategory(c.Category) {
		return fmt.Errorf("category must be spiritual, health, work or personal, got %q", c.Category)
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	habit, ok := ctx.Service.AddHabit(c.Title, models.Frequency(c.Frequency), c.Description)
	if !ok {
		return fmt.Errorf("habit title must not be empty")
	}
	if c.Category != "" {
		ctx.Service.UpdateHabit(habit.ID, func(h *models.Habit) {
			h.Category = models.HabitCategory(c.Category)
		})
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Title, cli.ShortID(habit.ID))
	return nil
}
