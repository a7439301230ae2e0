package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/models"
)

// Store is the on-disk layout: one field per storage key, each holding the
// whole collection.
type Store struct {
	Version            int                  `json:"version"`
	Settings           models.Settings      `json:"settings"`
	Habits             []models.Habit       `json:"habits"`
	Tasks              []models.Task        `json:"tasks"`
	Notes              []models.Note        `json:"notes"`
	ChatHistory        []models.ChatMessage `json:"chat-history"`
	ConfessionDate     string               `json:"confession-date,omitempty"`
	LastConfessionDate string               `json:"last-confession-date,omitempty"`
	AdviceCache        map[string]string    `json:"advice-cache"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: ExpandPath(configPath),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

// Load reads the store file. A missing or unparseable file is treated as an
// empty store, never an error; corruption is logged and the session carries
// on from defaults.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = emptyStore()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		logger.Warn("Storage file is malformed, starting from defaults", "path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	if s.store.AdviceCache == nil {
		s.store.AdviceCache = make(map[string]string)
	}
	if s.store.Settings.Language == "" {
		s.store.Settings = models.DefaultSettings()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyStore() *Store {
	return &Store{
		Version:     1,
		Settings:    models.DefaultSettings(),
		AdviceCache: make(map[string]string),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) ensureLoaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.ensureLoaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]models.Habit(nil), s.store.Habits...), nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.Habits = append([]models.Habit(nil), habits...)
	return s.save()
}

func (s *JSONStore) GetTasks() ([]models.Task, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]models.Task(nil), s.store.Tasks...), nil
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.Tasks = append([]models.Task(nil), tasks...)
	return s.save()
}

func (s *JSONStore) GetNotes() ([]models.Note, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]models.Note(nil), s.store.Notes...), nil
}

func (s *JSONStore) SaveNotes(notes []models.Note) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.Notes = append([]models.Note(nil), notes...)
	return s.save()
}

func (s *JSONStore) GetChatHistory() ([]models.ChatMessage, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]models.ChatMessage(nil), s.store.ChatHistory...), nil
}

func (s *JSONStore) SaveChatHistory(messages []models.ChatMessage) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.ChatHistory = append([]models.ChatMessage(nil), messages...)
	return s.save()
}

func (s *JSONStore) GetConfessionDate() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.store.ConfessionDate, nil
}

func (s *JSONStore) SaveConfessionDate(date string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.ConfessionDate = date
	return s.save()
}

func (s *JSONStore) GetLastConfessionDate() (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.store.LastConfessionDate, nil
}

func (s *JSONStore) SaveLastConfessionDate(date string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.LastConfessionDate = date
	return s.save()
}

func (s *JSONStore) GetCachedAdvice(day string) (string, error) {
	if err := s.ensureLoaded(); err != nil {
		return "", err
	}
	return s.store.AdviceCache[day], nil
}

func (s *JSONStore) SaveCachedAdvice(day, text string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.AdviceCache[day] = text
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
