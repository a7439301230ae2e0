package habits

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
)

type HabitListCmd struct {
	ShowIDs bool `help:"Show habit IDs." name:"show-ids"`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Service.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := app.Today()
	fmt.Println("Habits:")
	for _, h := range habits {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", cli.ShortID(h.ID))
		}
		catStr := ""
		if h.Category != "" {
			catStr = fmt.Sprintf(" [%s]", h.Category)
		}
		fmt.Printf("  %s %s%s - %s, streak %d%s\n",
			cli.Checkbox(h.CompletedOn(today)), h.Title, idStr, h.Frequency, h.Streak, catStr)
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}
	return nil
}
