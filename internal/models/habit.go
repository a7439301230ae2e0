package models

import "time"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// ValidFrequency reports whether s is one of the two supported frequencies.
func ValidFrequency(s string) bool {
	return Frequency(s) == FrequencyDaily || Frequency(s) == FrequencyWeekly
}

type HabitCategory string

const (
	CategorySpiritual HabitCategory = "spiritual"
	CategoryHealth    HabitCategory = "health"
	CategoryWork      HabitCategory = "work"
	CategoryPersonal  HabitCategory = "personal"
)

// ValidCategory reports whether s is one of the four habit categories.
func ValidCategory(s string) bool {
	switch HabitCategory(s) {
	case CategorySpiritual, CategoryHealth, CategoryWork, CategoryPersonal:
		return true
	}
	return false
}

type Habit struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Frequency   Frequency `json:"frequency"`
	Streak      int       `json:"streak"`
	// CompletedDates holds YYYY-MM-DD strings, each at most once.
	CompletedDates []string      `json:"completed_dates"`
	CreatedAt      time.Time     `json:"created_at"`
	Category       HabitCategory `json:"category,omitempty"`
}

// CompletedOn reports whether the habit was checked for the given day (YYYY-MM-DD).
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
