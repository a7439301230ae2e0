package app

import (
	"strings"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// AddHabit appends a new habit. A whitespace-only title is a silent no-op
// (ok=false) per the add contract: the form stays open, nothing changes.
func (s *Service) AddHabit(title string, frequency models.Frequency, description string) (models.Habit, bool) {
	if strings.TrimSpace(title) == "" {
		return models.Habit{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	habit := models.Habit{
		ID:             newID(),
		Title:          title,
		Description:    description,
		Frequency:      frequency,
		Streak:         0,
		CompletedDates: []string{},
		CreatedAt:      time.Now(),
	}
	s.habits = append(s.habits, habit)
	persist("habits", s.store.SaveHabits(s.habits))
	return habit, true
}

// UpdateHabit replaces the habit with a shallow-merged copy produced by
// mutate. No-op when the id is absent.
func (s *Service) UpdateHabit(id string, mutate func(*models.Habit)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID == id {
			h := s.habits[i]
			mutate(&h)
			s.habits[i] = h
			persist("habits", s.store.SaveHabits(s.habits))
			return true
		}
	}
	return false
}

// ToggleHabitCompletion checks or unchecks the habit for the given day
// (today when empty). The streak is a plain increment/decrement counter
// floored at zero; it is intentionally not recomputed from consecutive-day
// logic, so toggling old dates can drift it from completedDates. That is the
// established contract, not a defect.
func (s *Service) ToggleHabitCompletion(id, date string) (models.Habit, bool) {
	if date == "" {
		date = Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}

		h := s.habits[i]
		if h.CompletedOn(date) {
			kept := make([]string, 0, len(h.CompletedDates))
			for _, d := range h.CompletedDates {
				if d != date {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
			if h.Streak > 0 {
				h.Streak--
			}
		} else {
			h.CompletedDates = append(append([]string(nil), h.CompletedDates...), date)
			h.Streak++
		}

		s.habits[i] = h
		persist("habits", s.store.SaveHabits(s.habits))
		return h, true
	}
	return models.Habit{}, false
}

// DeleteHabit removes the habit; no-op if the id is absent.
func (s *Service) DeleteHabit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Habit, 0, len(s.habits))
	found := false
	for _, h := range s.habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if found {
		s.habits = kept
		persist("habits", s.store.SaveHabits(s.habits))
	}
	return found
}
