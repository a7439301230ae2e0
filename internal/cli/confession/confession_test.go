package confession

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

func TestScheduleCmd(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &ScheduleCmd{Date: "2025-05-20"}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := ctx.Service.ConfessionDate(); got != "2025-05-20" {
		t.Fatalf("expected scheduled date, got %q", got)
	}
}

func TestScheduleCmdRejectsBadDate(t *testing.T) {
	cmd := &ScheduleCmd{Date: "next week"}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLogCmdClearsFulfilledAppointment(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Service.ScheduleConfession("2025-05-20")

	cmd := &LogCmd{Date: "2025-05-21"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := ctx.Service.LastConfessionDate(); got != "2025-05-21" {
		t.Fatalf("expected last confession 2025-05-21, got %q", got)
	}
	if got := ctx.Service.ConfessionDate(); got != "" {
		t.Fatalf("expected appointment cleared, got %q", got)
	}
}

func TestClearCmd(t *testing.T) {
	ctx := setupTestContext(t)
	ctx.Service.ScheduleConfession("2025-05-20")

	cmd := &ClearCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got := ctx.Service.ConfessionDate(); got != "" {
		t.Fatalf("expected cleared schedule, got %q", got)
	}
}

func TestStatusCmd(t *testing.T) {
	ctx := setupTestContext(t)
	cmd := &StatusCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	ctx.Service.ScheduleConfession("2025-05-20")
	ctx.Service.LogConfession("2025-05-19")
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run with data failed: %v", err)
	}
}
