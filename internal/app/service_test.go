package app

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
	"github.com/yonasmekonnen/nesha/internal/storage"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nesha.json")
	store := storage.NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	svc := New(store, nil)
	if err := svc.Load(); err != nil {
		t.Fatalf("Service.Load() error = %v", err)
	}
	return svc, path
}

func TestAddHabitRejectsBlankTitle(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"tab and newline", "\t\n", false},
		{"valid", "Morning prayer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(svc.Habits())
			_, ok := svc.AddHabit(tt.title, models.FrequencyDaily, "")
			if ok != tt.want {
				t.Errorf("AddHabit(%q) ok = %v, want %v", tt.title, ok, tt.want)
			}
			after := len(svc.Habits())
			if tt.want && after != before+1 {
				t.Errorf("habit count = %d, want %d", after, before+1)
			}
			if !tt.want && after != before {
				t.Errorf("rejected add changed collection: %d -> %d", before, after)
			}
		})
	}
}

func TestAddTaskAndNoteRejectBlank(t *testing.T) {
	svc, _ := newTestService(t)

	if _, ok := svc.AddTask("  ", models.PriorityHigh, "", false); ok {
		t.Error("AddTask with blank title should be a no-op")
	}
	if _, ok := svc.AddNote(" \n "); ok {
		t.Error("AddNote with blank content should be a no-op")
	}
	if len(svc.Tasks()) != 0 || len(svc.Notes()) != 0 {
		t.Error("rejected adds must leave collections unchanged")
	}
}

// Toggling the same date twice returns completedDates and streak to their
// prior values exactly.
func TestToggleHabitCompletionIdempotentPairing(t *testing.T) {
	svc, _ := newTestService(t)
	habit, _ := svc.AddHabit("Read scripture", models.FrequencyDaily, "")

	day := "2026-08-20"
	first, ok := svc.ToggleHabitCompletion(habit.ID, day)
	if !ok {
		t.Fatal("toggle on: habit not found")
	}
	if first.Streak != 1 || !first.CompletedOn(day) {
		t.Fatalf("after check: streak=%d completed=%v", first.Streak, first.CompletedOn(day))
	}

	second, _ := svc.ToggleHabitCompletion(habit.ID, day)
	if second.Streak != 0 || second.CompletedOn(day) {
		t.Fatalf("after uncheck: streak=%d completed=%v", second.Streak, second.CompletedOn(day))
	}
	if !reflect.DeepEqual(second.CompletedDates, habit.CompletedDates) {
		t.Errorf("completedDates not restored: %v vs %v", second.CompletedDates, habit.CompletedDates)
	}
}

func TestStreakFlooredAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	habit, _ := svc.AddHabit("Fast on Wednesdays", models.FrequencyWeekly, "")

	// A checked date paired with a zero streak can exist after drift (old
	// dates toggled); unchecking it must not push the streak negative.
	svc.UpdateHabit(habit.ID, func(h *models.Habit) {
		h.CompletedDates = []string{"2026-08-01"}
		h.Streak = 0
	})

	got, _ := svc.ToggleHabitCompletion(habit.ID, "2026-08-01")
	if got.Streak != 0 {
		t.Errorf("streak = %d, want 0 (floored)", got.Streak)
	}
	if got.CompletedOn("2026-08-01") {
		t.Error("date should have been unchecked")
	}
}

// The streak is an increment/decrement counter, not a recomputation from
// consecutive dates. Checking two dates weeks apart yields streak 2; that
// drift from true consecutive-day counting is the documented contract.
func TestStreakIsPlainCounterKnownLimitation(t *testing.T) {
	svc, _ := newTestService(t)
	habit, _ := svc.AddHabit("Evening prayer", models.FrequencyDaily, "")

	svc.ToggleHabitCompletion(habit.ID, "2026-01-01")
	got, _ := svc.ToggleHabitCompletion(habit.ID, "2026-02-15")
	if got.Streak != 2 {
		t.Errorf("streak = %d, want 2 (plain counter, not consecutive-day logic)", got.Streak)
	}
}

func TestMutationsOnAbsentIDAreNoOps(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddHabit("h", models.FrequencyDaily, "")
	svc.AddTask("t", models.PriorityLow, "", false)
	svc.AddNote("n")

	if svc.DeleteHabit("missing") {
		t.Error("DeleteHabit on absent id should report false")
	}
	if _, ok := svc.ToggleHabitCompletion("missing", ""); ok {
		t.Error("ToggleHabitCompletion on absent id should report false")
	}
	if _, ok := svc.ToggleTask("missing"); ok {
		t.Error("ToggleTask on absent id should report false")
	}
	if svc.DeleteTask("missing") || svc.DeleteNote("missing") {
		t.Error("deletes on absent ids should report false")
	}
	if len(svc.Habits()) != 1 || len(svc.Tasks()) != 1 || len(svc.Notes()) != 1 {
		t.Error("no-op mutations must not change collections")
	}
}

func TestNotesArePrepended(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddNote("first")
	svc.AddNote("second")

	notes := svc.Notes()
	if len(notes) != 2 || notes[0].Content != "second" || notes[1].Content != "first" {
		t.Errorf("notes order = %v, want newest first", []string{notes[0].Content, notes[1].Content})
	}
}

func TestUpdateNoteBumpsUpdatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	note, _ := svc.AddNote("draft")

	time.Sleep(2 * time.Millisecond)
	if !svc.UpdateNote(note.ID, "final") {
		t.Fatal("UpdateNote reported not found")
	}
	got := svc.Notes()[0]
	if got.Content != "final" {
		t.Errorf("content = %q", got.Content)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("UpdatedAt should advance past CreatedAt")
	}

	if svc.UpdateNote(note.ID, "   ") {
		t.Error("blank content should be rejected on update")
	}
}

func TestToggleTask(t *testing.T) {
	svc, _ := newTestService(t)
	task, _ := svc.AddTask("Call abune", models.PriorityHigh, "", false)
	if task.Completed {
		t.Fatal("new task should default to incomplete")
	}

	got, _ := svc.ToggleTask(task.ID)
	if !got.Completed {
		t.Error("first toggle should complete the task")
	}
	got, _ = svc.ToggleTask(task.ID)
	if got.Completed {
		t.Error("second toggle should reopen the task")
	}
}

func TestSortTasks(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	incompleteHigh := models.Task{ID: "1", Title: "high", Priority: models.PriorityHigh, CreatedAt: t1}
	completedLow := models.Task{ID: "2", Title: "done", Priority: models.PriorityLow, Completed: true, CreatedAt: t2}
	incompleteLowDue := models.Task{ID: "3", Title: "due", Priority: models.PriorityLow, DueDate: "2026-08-10", CreatedAt: t2}
	incompleteMedNoDue := models.Task{ID: "4", Title: "later", Priority: models.PriorityMedium, CreatedAt: t3}

	tests := []struct {
		name  string
		tasks []models.Task
		by    TaskSort
		want  []string // ids in order
	}{
		{
			name:  "incomplete-first dominates every key",
			tasks: []models.Task{completedLow, incompleteHigh},
			by:    SortByCreation,
			want:  []string{"1", "2"},
		},
		{
			name:  "incomplete-first dominates priority",
			tasks: []models.Task{completedLow, incompleteHigh},
			by:    SortByPriority,
			want:  []string{"1", "2"},
		},
		{
			name:  "incomplete-first dominates due date",
			tasks: []models.Task{completedLow, incompleteHigh},
			by:    SortByDueDate,
			want:  []string{"1", "2"},
		},
		{
			name:  "priority descending",
			tasks: []models.Task{incompleteLowDue, incompleteMedNoDue, incompleteHigh},
			by:    SortByPriority,
			want:  []string{"1", "4", "3"},
		},
		{
			name:  "due date ascending with nulls last",
			tasks: []models.Task{incompleteMedNoDue, incompleteLowDue},
			by:    SortByDueDate,
			want:  []string{"3", "4"},
		},
		{
			name:  "creation fallback is newest first",
			tasks: []models.Task{incompleteLowDue, incompleteMedNoDue},
			by:    SortByCreation,
			want:  []string{"4", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortTasks(tt.tasks, tt.by)
			var ids []string
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("SortTasks() order = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestConfessionDatesAreIndependent(t *testing.T) {
	svc, _ := newTestService(t)

	svc.ScheduleConfession("2026-09-15")
	svc.LogConfession("2026-08-01")
	if svc.ConfessionDate() != "2026-09-15" {
		t.Error("logging a past confession must not clear a future appointment")
	}

	svc.ClearLastConfession()
	if svc.LastConfessionDate() != "" {
		t.Error("ClearLastConfession failed")
	}
	if svc.ConfessionDate() != "2026-09-15" {
		t.Error("clearing last confession must not touch the appointment")
	}

	// Logging a confession on or after the appointment fulfils it.
	svc.LogConfession("2026-09-15")
	if svc.ConfessionDate() != "" {
		t.Error("appointment should clear once fulfilled")
	}
	if svc.LastConfessionDate() != "2026-09-15" {
		t.Error("last confession date lost")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	svc, path := newTestService(t)

	habit, _ := svc.AddHabit("Read psalms", models.FrequencyDaily, "one chapter")
	svc.ToggleHabitCompletion(habit.ID, "2026-08-25")
	svc.AddTask("Buy candles", models.PriorityMedium, "2026-09-01", true)
	svc.AddNote("Remember the fast")
	svc.AppendChatMessage(models.RoleUser, "selam", false)
	svc.ScheduleConfession("2026-09-20")
	svc.SetLanguage(models.LanguageAmharic)
	svc.SetDarkMode(true)

	reloaded := storage.NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	svc2 := New(reloaded, nil)
	if err := svc2.Load(); err != nil {
		t.Fatalf("Service reload: %v", err)
	}

	if !reflect.DeepEqual(normalizeHabits(svc.Habits()), normalizeHabits(svc2.Habits())) {
		t.Error("habits did not round-trip")
	}
	if len(svc2.Tasks()) != 1 || svc2.Tasks()[0].Title != "Buy candles" || !svc2.Tasks()[0].Reminder {
		t.Error("tasks did not round-trip")
	}
	if len(svc2.Notes()) != 1 || svc2.Notes()[0].Content != "Remember the fast" {
		t.Error("notes did not round-trip")
	}
	if len(svc2.ChatMessages()) != 1 || svc2.ChatMessages()[0].Role != models.RoleUser {
		t.Error("chat history did not round-trip")
	}
	if svc2.ConfessionDate() != "2026-09-20" {
		t.Error("confession date did not round-trip")
	}
	if got := svc2.Settings(); got.Language != models.LanguageAmharic || !got.DarkMode {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}

// normalizeHabits zeroes CreatedAt so DeepEqual ignores monotonic-clock and
// serialization precision differences.
func normalizeHabits(habits []models.Habit) []models.Habit {
	out := append([]models.Habit(nil), habits...)
	for i := range out {
		out[i].CreatedAt = time.Time{}
	}
	return out
}

func TestReminders(t *testing.T) {
	svc, _ := newTestService(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	longAgo := time.Now().AddDate(0, 0, -45).Format("2006-01-02")

	svc.AddTask("overdue with reminder", models.PriorityHigh, yesterday, true)
	svc.AddTask("overdue without reminder", models.PriorityHigh, yesterday, false)
	svc.AddTask("future with reminder", models.PriorityLow, tomorrow, true)
	svc.LogConfession(longAgo)

	reminders := svc.Reminders()
	kinds := map[ReminderKind]int{}
	for _, r := range reminders {
		kinds[r.Kind]++
	}
	if kinds[ReminderTaskDue] != 1 {
		t.Errorf("task-due reminders = %d, want 1", kinds[ReminderTaskDue])
	}
	if kinds[ReminderConfessionOverdue] != 1 {
		t.Errorf("confession-overdue reminders = %d, want 1", kinds[ReminderConfessionOverdue])
	}

	svc.ScheduleConfession(tomorrow)
	reminders = svc.Reminders()
	kinds = map[ReminderKind]int{}
	for _, r := range reminders {
		kinds[r.Kind]++
	}
	if kinds[ReminderConfessionUpcoming] != 1 {
		t.Errorf("confession-upcoming reminders = %d, want 1", kinds[ReminderConfessionUpcoming])
	}
	if kinds[ReminderConfessionOverdue] != 0 {
		t.Error("a scheduled appointment should suppress the overdue nudge")
	}
}
