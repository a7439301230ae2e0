package tasks

import (
	"path/filepath"
	"testing"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/cli"
	"github.com/yonasmekonnen/nesha/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nesha.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	svc := app.New(store, nil)
	if err := svc.Load(); err != nil {
		t.Fatalf("failed to load service: %v", err)
	}
	return &cli.Context{Store: store, Service: svc}
}

func TestTaskAddCmd(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &TaskAddCmd{Title: "Call Abba Yohannes", Priority: "high", Due: "2025-04-01", Reminder: true}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := ctx.Service.Tasks()
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].Priority != "high" || got[0].DueDate != "2025-04-01" || !got[0].Reminder {
		t.Fatalf("unexpected task: %+v", got[0])
	}
}

func TestTaskAddCmdValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  TaskAddCmd
	}{
		{name: "bad priority", cmd: TaskAddCmd{Title: "x", Priority: "urgent"}},
		{name: "bad due date", cmd: TaskAddCmd{Title: "x", Priority: "low", Due: "tomorrow"}},
		{name: "reminder without due", cmd: TaskAddCmd{Title: "x", Priority: "low", Reminder: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestTaskDoneCmd(t *testing.T) {
	ctx := setupTestContext(t)
	task, _ := ctx.Service.AddTask("Buy candles", "low", "", false)

	cmd := &TaskDoneCmd{ID: task.ID}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !ctx.Service.Tasks()[0].Completed {
		t.Fatal("task was not completed")
	}

	// A second run reopens it
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if ctx.Service.Tasks()[0].Completed {
		t.Fatal("task was not reopened")
	}
}

func TestTaskDeleteCmd(t *testing.T) {
	ctx := setupTestContext(t)
	task, _ := ctx.Service.AddTask("Old errand", "medium", "", false)

	cmd := &TaskDeleteCmd{ID: task.ID[:8]}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(ctx.Service.Tasks()) != 0 {
		t.Fatal("task was not deleted")
	}
}

func TestTaskListCmdEmpty(t *testing.T) {
	ctx := setupTestContext(t)
	cmd := &TaskListCmd{Sort: "priority"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}
