package storage

import "github.com/yonasmekonnen/nesha/internal/models"

// Provider persists each top-level collection wholesale to a string-keyed
// local store as serialized JSON. A key that has never been written reads
// back as an empty collection or zero value, never an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Collections
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error
	GetTasks() ([]models.Task, error)
	SaveTasks([]models.Task) error
	GetNotes() ([]models.Note, error)
	SaveNotes([]models.Note) error
	GetChatHistory() ([]models.ChatMessage, error)
	SaveChatHistory([]models.ChatMessage) error

	// Confession tracking. Empty string means unset; saving an empty string
	// clears the key. The two dates are independent.
	GetConfessionDate() (string, error)
	SaveConfessionDate(string) error
	GetLastConfessionDate() (string, error)
	SaveLastConfessionDate(string) error

	// Daily advice cache, one entry per calendar day (YYYY-MM-DD).
	GetCachedAdvice(day string) (string, error)
	SaveCachedAdvice(day, text string) error

	// Utils
	GetConfigPath() string
}
