package system

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

func TestTodayCmd(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &TodayCmd{Date: "2024-09-11", Lang: "en"}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestTodayCmdValidation(t *testing.T) {
	if err := (&TodayCmd{Date: "11-09-2024"}).Validate(); err == nil {
		t.Fatal("expected error for bad date format")
	}
	if err := (&TodayCmd{Lang: "fr"}).Validate(); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestInitCmd(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nesha.json"))
	ctx := &cli.Context{Store: store, Service: app.New(store, nil)}

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	// Second init without --force must refuse
	if err := cmd.Run(ctx); err == nil {
		t.Fatal("expected error on double init")
	}
	// --force resets
	force := &InitCmd{Force: true}
	if err := force.Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
}
