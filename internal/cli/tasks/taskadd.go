package tasks

import (
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/constants"
	"github.com/yonasmekonnen/nesha/internal/models"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Priority string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Reminder bool   `short:"r" help:"Remind when the task is due."`
}

func (c *TaskAddCmd) Validate() error {
	if !models.ValidPriority(c.Priority) {
		return fmt.Errorf("priority must be low, medium or high, got %q", c.Priority)
	}
	if c.Due != "" {
		if _, err := time.Parse(constants.DateFormat, c.Due); err != nil {
			return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", c.Due)
		}
	}
	if c.Reminder && c.Due == "" {
		return fmt.Errorf("--reminder requires a due date")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task, ok := ctx.Service.AddTask(c.Title, models.Priority(c.Priority), c.Due, c.Reminder)
	if !ok {
		return fmt.Errorf("task title must not be empty")
	}
	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	return nil
}
