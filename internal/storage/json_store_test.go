package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

func TestJSONStoreMissingFileIsEmpty(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nesha.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() of missing file should not error: %v", err)
	}

	habits, err := store.GetHabits()
	if err != nil {
		t.Fatalf("GetHabits() error = %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected empty habits, got %d", len(habits))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings != models.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", settings)
	}

	date, err := store.GetConfessionDate()
	if err != nil || date != "" {
		t.Errorf("absent confession date should read back empty, got %q, %v", date, err)
	}
}

func TestJSONStoreMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nesha.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() of malformed file should not error: %v", err)
	}
	if tasks, _ := store.GetTasks(); len(tasks) != 0 {
		t.Error("malformed file should behave as empty collections")
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nesha.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("second Init() should refuse an existing store")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nesha.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	habits := []models.Habit{{
		ID:             "h1",
		Title:          "Morning prayer",
		Frequency:      models.FrequencyDaily,
		Streak:         3,
		CompletedDates: []string{"2026-08-25", "2026-08-26"},
		CreatedAt:      time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC),
	}}
	tasks := []models.Task{{
		ID:        "t1",
		Title:     "Buy candles",
		DueDate:   "2026-09-01",
		Priority:  models.PriorityHigh,
		Reminder:  true,
		CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
	}}

	if err := store.SaveHabits(habits); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveTasks(tasks); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveConfessionDate("2026-09-20"); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveCachedAdvice("2026-08-27", "Patience is a tree whose root is bitter."); err != nil {
		t.Fatal(err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	gotHabits, err := reloaded.GetHabits()
	if err != nil {
		t.Fatal(err)
	}
	if len(gotHabits) != 1 || gotHabits[0].ID != "h1" || gotHabits[0].Streak != 3 ||
		len(gotHabits[0].CompletedDates) != 2 {
		t.Errorf("habits did not round-trip: %+v", gotHabits)
	}

	gotTasks, _ := reloaded.GetTasks()
	if len(gotTasks) != 1 || gotTasks[0].DueDate != "2026-09-01" || !gotTasks[0].Reminder {
		t.Errorf("tasks did not round-trip: %+v", gotTasks)
	}

	if date, _ := reloaded.GetConfessionDate(); date != "2026-09-20" {
		t.Errorf("confession date = %q", date)
	}
	if advice, _ := reloaded.GetCachedAdvice("2026-08-27"); advice == "" {
		t.Error("advice cache did not round-trip")
	}
	if advice, _ := reloaded.GetCachedAdvice("2026-08-28"); advice != "" {
		t.Error("advice cache for another day should be empty")
	}
}

func TestJSONStoreClearConfessionDate(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nesha.json"))
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	store.SaveConfessionDate("2026-09-20")
	store.SaveLastConfessionDate("2026-08-01")
	store.SaveConfessionDate("")

	if date, _ := store.GetConfessionDate(); date != "" {
		t.Error("confession date should clear")
	}
	if date, _ := store.GetLastConfessionDate(); date != "2026-08-01" {
		t.Error("clearing one confession key must not affect the other")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/x/y.json", filepath.Join(home, "x/y.json")},
		{"/abs/path.json", "/abs/path.json"},
		{"relative.json", "relative.json"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
