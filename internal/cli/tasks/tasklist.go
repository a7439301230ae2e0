package tasks

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
)

type TaskListCmd struct {
	Sort    string `short:"s" help:"Secondary sort key (creation|priority|due)." default:"creation" enum:"creation,priority,due"`
	Pending bool   `help:"Show only incomplete tasks."`
	ShowIDs bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Service.SortedTasks(app.TaskSort(c.Sort))
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	today := app.Today()
	fmt.Println("Tasks:")
	for _, t := range tasks {
		if c.Pending && t.Completed {
			continue
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", cli.ShortID(t.ID))
		}

		due := ""
		if t.DueDate != "" {
			due = fmt.Sprintf(", due %s", t.DueDate)
			if t.Overdue(today) {
				due += " (overdue)"
			}
		}

		fmt.Printf("  %s %s%s - %s%s\n", cli.Checkbox(t.Completed), t.Title, idStr, t.Priority, due)
	}
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID (or unique prefix) to toggle."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	updated, ok := ctx.Service.ToggleTask(task.ID)
	if !ok {
		return fmt.Errorf("failed to toggle task %s", c.ID)
	}
	state := "reopened"
	if updated.Completed {
		state = "completed"
	}
	fmt.Printf("%s: %s\n", state, updated.Title)
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID (or unique prefix) to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.ID)
	if err != nil {
		return err
	}
	if !ctx.Service.DeleteTask(task.ID) {
		return fmt.Errorf("failed to delete task %s", c.ID)
	}
	fmt.Printf("Deleted task: %s (ID: %s)\n", task.Title, cli.ShortID(task.ID))
	return nil
}
