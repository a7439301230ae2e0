// Package app owns the authoritative in-memory value of every collection.
// Views read snapshots and call mutation methods; each mutation computes the
// next collection value, applies it, then persists the affected collection.
// There are no ambient subscriptions. A mutex serializes
// mutations so a second caller always sees the first's applied result.
package app

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yonasmekonnen/nesha/internal/ai"
	"github.com/yonasmekonnen/nesha/internal/constants"
	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/models"
	"github.com/yonasmekonnen/nesha/internal/storage"
)

type Service struct {
	mu    sync.Mutex
	store storage.Provider
	ai    *ai.Client

	settings           models.Settings
	habits             []models.Habit
	tasks              []models.Task
	notes              []models.Note
	chat               []models.ChatMessage
	confessionDate     string
	lastConfessionDate string
}

// New wires the service to its store and AI client. The client may be nil
// (AI unavailable); every AI-backed operation degrades.
func New(store storage.Provider, client *ai.Client) *Service {
	return &Service{store: store, ai: client}
}

// Load pulls every collection from the store. Run once at startup.
func (s *Service) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}
	s.settings = settings

	if s.habits, err = s.store.GetHabits(); err != nil {
		return err
	}
	if s.tasks, err = s.store.GetTasks(); err != nil {
		return err
	}
	if s.notes, err = s.store.GetNotes(); err != nil {
		return err
	}
	if s.chat, err = s.store.GetChatHistory(); err != nil {
		return err
	}
	if s.confessionDate, err = s.store.GetConfessionDate(); err != nil {
		return err
	}
	if s.lastConfessionDate, err = s.store.GetLastConfessionDate(); err != nil {
		return err
	}
	return nil
}

// AI exposes the companion client for chat sessions and the analyzer.
func (s *Service) AI() *ai.Client {
	return s.ai
}

// Today returns the current calendar day as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

func newID() string {
	return uuid.New().String()
}

// persist wraps a collection write: storage failures are logged and absorbed
// so the mutation that triggered them still stands, with in-memory state as
// the session's source of truth.
func persist(what string, err error) {
	if err != nil {
		logger.Warn("Failed to persist collection", "collection", what, "error", err)
	}
}

// --- snapshots ---

func (s *Service) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Service) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Habit(nil), s.habits...)
}

func (s *Service) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...)
}

func (s *Service) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Note(nil), s.notes...)
}

func (s *Service) ChatMessages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.chat...)
}

func (s *Service) ConfessionDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confessionDate
}

func (s *Service) LastConfessionDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastConfessionDate
}
