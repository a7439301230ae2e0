package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "nesha.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreAbsentKeysAreEmpty(t *testing.T) {
	store := newSQLiteStore(t)

	if habits, err := store.GetHabits(); err != nil || len(habits) != 0 {
		t.Errorf("GetHabits() = %v, %v; want empty", habits, err)
	}
	if notes, err := store.GetNotes(); err != nil || len(notes) != 0 {
		t.Errorf("GetNotes() = %v, %v; want empty", notes, err)
	}
	if settings, err := store.GetSettings(); err != nil || settings != models.DefaultSettings() {
		t.Errorf("GetSettings() = %+v, %v; want defaults", settings, err)
	}
	if date, err := store.GetConfessionDate(); err != nil || date != "" {
		t.Errorf("GetConfessionDate() = %q, %v; want empty", date, err)
	}
	if advice, err := store.GetCachedAdvice("2026-08-27"); err != nil || advice != "" {
		t.Errorf("GetCachedAdvice() = %q, %v; want empty", advice, err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nesha.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	notes := []models.Note{{
		ID:        "n1",
		Content:   "Remember the fast",
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC),
	}}
	messages := []models.ChatMessage{
		{ID: "m1", Role: models.RoleUser, Text: "selam", Timestamp: 1},
		{ID: "m2", Role: models.RoleModel, Text: "selam!", Timestamp: 2},
	}

	if err := store.SaveNotes(notes); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveChatHistory(messages); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSettings(models.Settings{Language: models.LanguageAmharic, DarkMode: true}); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reloaded := NewSQLiteStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	defer reloaded.Close()

	gotNotes, err := reloaded.GetNotes()
	if err != nil || len(gotNotes) != 1 || gotNotes[0].Content != "Remember the fast" {
		t.Errorf("notes did not round-trip: %v, %v", gotNotes, err)
	}

	gotMessages, _ := reloaded.GetChatHistory()
	if len(gotMessages) != 2 || gotMessages[0].Role != models.RoleUser || gotMessages[1].Role != models.RoleModel {
		t.Errorf("chat history did not round-trip: %v", gotMessages)
	}

	gotSettings, _ := reloaded.GetSettings()
	if gotSettings.Language != models.LanguageAmharic || !gotSettings.DarkMode {
		t.Errorf("settings did not round-trip: %+v", gotSettings)
	}
}

func TestSQLiteStoreOverwriteReplacesWholesale(t *testing.T) {
	store := newSQLiteStore(t)

	store.SaveTasks([]models.Task{
		{ID: "t1", Title: "a", Priority: models.PriorityLow, CreatedAt: time.Now()},
		{ID: "t2", Title: "b", Priority: models.PriorityLow, CreatedAt: time.Now()},
	})
	store.SaveTasks([]models.Task{
		{ID: "t2", Title: "b", Priority: models.PriorityLow, CreatedAt: time.Now()},
	})

	tasks, _ := store.GetTasks()
	if len(tasks) != 1 || tasks[0].ID != "t2" {
		t.Errorf("collection write should replace wholesale, got %v", tasks)
	}
}

func TestSQLiteStoreConfessionClear(t *testing.T) {
	store := newSQLiteStore(t)

	store.SaveConfessionDate("2026-09-20")
	store.SaveLastConfessionDate("2026-08-01")
	store.SaveConfessionDate("")

	if date, _ := store.GetConfessionDate(); date != "" {
		t.Error("confession date should clear")
	}
	if date, _ := store.GetLastConfessionDate(); date != "2026-08-01" {
		t.Error("the other confession key must survive")
	}
}

func TestSQLiteStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nesha.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	store.Close()

	if err := NewSQLiteStore(path).Init(); err == nil {
		t.Error("second Init() should refuse an existing store")
	}
}
