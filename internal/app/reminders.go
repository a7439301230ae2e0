package app

import (
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/constants"
)

type ReminderKind string

const (
	ReminderTaskDue            ReminderKind = "task-due"
	ReminderConfessionOverdue  ReminderKind = "confession-overdue"
	ReminderConfessionUpcoming ReminderKind = "confession-upcoming"
)

type Reminder struct {
	Kind ReminderKind
	Text string
}

// Reminders derives the current notification set: due or overdue tasks that
// asked for a reminder, a scheduled confession appointment, and a nudge when
// the last confession is more than 30 days past.
func (s *Service) Reminders() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := Today()
	var reminders []Reminder

	for _, t := range s.tasks {
		if !t.Reminder || t.Completed || t.DueDate == "" || t.DueDate > today {
			continue
		}
		text := fmt.Sprintf("Task %q is due today", t.Title)
		if t.DueDate < today {
			text = fmt.Sprintf("Task %q is overdue (due %s)", t.Title, t.DueDate)
		}
		reminders = append(reminders, Reminder{Kind: ReminderTaskDue, Text: text})
	}

	if s.confessionDate != "" && s.confessionDate >= today {
		reminders = append(reminders, Reminder{
			Kind: ReminderConfessionUpcoming,
			Text: fmt.Sprintf("Confession scheduled for %s", s.confessionDate),
		})
	}

	if s.lastConfessionDate != "" && s.confessionDate == "" {
		if last, err := time.Parse(constants.DateFormat, s.lastConfessionDate); err == nil {
			days := int(time.Since(last).Hours() / 24)
			if days > constants.ConfessionOverdueDays {
				reminders = append(reminders, Reminder{
					Kind: ReminderConfessionOverdue,
					Text: fmt.Sprintf("It has been %d days since your last confession", days),
				})
			}
		}
	}

	return reminders
}
