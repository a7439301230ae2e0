package system

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/notifier"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	reminders := ctx.Service.Reminders()
	if len(reminders) == 0 {
		if c.DryRun {
			fmt.Println("Nothing to notify.")
		}
		return nil
	}

	n := notifier.New()
	for _, r := range reminders {
		if c.DryRun {
			fmt.Println("[DryRun] " + r.Text)
			continue
		}
		if err := n.Notify(r.Text); err != nil {
			// Keep going so one failed delivery does not drop the rest
			fmt.Printf("Failed to send notification: %v\n", err)
		}
	}
	return nil
}
