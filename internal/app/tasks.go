package app

import (
	"sort"
	"strings"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// TaskSort selects the secondary sort key for task display. The primary key
// is always incomplete-before-completed; the fallback is always creation
// time, newest first.
type TaskSort string

const (
	SortByCreation TaskSort = "creation"
	SortByPriority TaskSort = "priority"
	SortByDueDate  TaskSort = "due"
)

// AddTask appends a new task. An empty title is a silent no-op.
func (s *Service) AddTask(title string, priority models.Priority, dueDate string, reminder bool) (models.Task, bool) {
	if strings.TrimSpace(title) == "" {
		return models.Task{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        newID(),
		Title:     title,
		DueDate:   dueDate,
		Priority:  priority,
		Completed: false,
		Reminder:  reminder,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, task)
	persist("tasks", s.store.SaveTasks(s.tasks))
	return task, true
}

// ToggleTask flips the completed flag; no-op if the id is absent.
func (s *Service) ToggleTask(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			t.Completed = !t.Completed
			s.tasks[i] = t
			persist("tasks", s.store.SaveTasks(s.tasks))
			return t, true
		}
	}
	return models.Task{}, false
}

// DeleteTask removes the task; no-op if the id is absent.
func (s *Service) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Task, 0, len(s.tasks))
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if found {
		s.tasks = kept
		persist("tasks", s.store.SaveTasks(s.tasks))
	}
	return found
}

// SortedTasks returns a display-ordered copy of the task list.
func (s *Service) SortedTasks(by TaskSort) []models.Task {
	return SortTasks(s.Tasks(), by)
}

// SortTasks orders tasks without mutating the input: incomplete first, then
// the selected secondary key, then creation time descending.
func SortTasks(tasks []models.Task, by TaskSort) []models.Task {
	sorted := append([]models.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if a.Completed != b.Completed {
			return !a.Completed
		}

		switch by {
		case SortByPriority:
			if d := a.Priority.Weight() - b.Priority.Weight(); d != 0 {
				return d > 0
			}
		case SortByDueDate:
			// Due date ascending, tasks without one last. The YYYY-MM-DD
			// format orders lexicographically.
			switch {
			case a.DueDate == "" && b.DueDate == "":
			case a.DueDate == "":
				return false
			case b.DueDate == "":
				return true
			case a.DueDate != b.DueDate:
				return a.DueDate < b.DueDate
			}
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
	return sorted
}
