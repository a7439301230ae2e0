package models

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Weight orders priorities for sorting: high > medium > low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ValidPriority reports whether s is one of the three supported priorities.
func ValidPriority(s string) bool {
	return Priority(s).Weight() > 0
}

type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// DueDate is an optional YYYY-MM-DD string. Overdue is derived at
	// display time, never stored.
	DueDate   string    `json:"due_date,omitempty"`
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	Reminder  bool      `json:"reminder,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Overdue reports whether the task has a due date strictly before today
// (YYYY-MM-DD) and is still incomplete.
func (t Task) Overdue(today string) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < today
}
