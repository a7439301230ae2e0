package confession

import (
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/constants"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	scheduled := ctx.Service.ConfessionDate()
	last := ctx.Service.LastConfessionDate()

	if scheduled != "" {
		fmt.Printf("Next confession: %s\n", scheduled)
	} else {
		fmt.Println("No confession scheduled")
	}

	if last == "" {
		fmt.Println("No confession logged yet")
		return nil
	}

	fmt.Printf("Last confession: %s", last)
	if t, err := time.Parse(constants.DateFormat, last); err == nil {
		days := int(time.Since(t).Hours() / 24)
		fmt.Printf(" (%d days ago)", days)
		if scheduled == "" && days > constants.ConfessionOverdueDays {
			fmt.Print("\nIt has been over a month. Consider scheduling a confession.")
		}
	}
	fmt.Println()
	return nil
}

type ScheduleCmd struct {
	Date string `arg:"" help:"Appointment date (YYYY-MM-DD)."`
}

func (c *ScheduleCmd) Validate() error {
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *ScheduleCmd) Run(ctx *cli.Context) error {
	ctx.Service.ScheduleConfession(c.Date)
	fmt.Printf("Confession scheduled for %s\n", c.Date)
	return nil
}

type LogCmd struct {
	Date string `arg:"" optional:"" help:"Date of the confession (YYYY-MM-DD). Defaults to today."`
}

func (c *LogCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
		}
	}
	return nil
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = app.Today()
	}
	ctx.Service.LogConfession(date)
	fmt.Printf("Confession logged for %s\n", date)
	return nil
}

type ClearCmd struct{}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	ctx.Service.ClearConfession()
	fmt.Println("Confession schedule cleared")
	return nil
}
