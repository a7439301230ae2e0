package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/yonasmekonnen/nesha/internal/constants"
	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/models"
)

// SQLiteStore keeps the same key/JSON-value layout as the JSON file store in
// a single kv table, for users who prefer one durable database file.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: ExpandPath(path),
	}
}

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.SaveSettings(models.DefaultSettings())
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// getJSON unmarshals the value at key into dst. A missing or malformed row
// leaves dst untouched, so callers start from their zero value.
func (s *SQLiteStore) getJSON(key string, dst interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read key %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), dst); err != nil {
		logger.Warn("Stored value is malformed, using defaults", "key", key, "error", err)
	}
	return nil
}

func (s *SQLiteStore) setJSON(key string, v interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize key %q: %w", key, err)
	}

	_, err = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) deleteKey(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := s.getJSON(constants.KeySettings, &settings); err != nil {
		return models.Settings{}, err
	}
	if settings.Language == "" {
		settings = models.DefaultSettings()
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	return s.setJSON(constants.KeySettings, settings)
}

func (s *SQLiteStore) GetHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.getJSON(constants.KeyHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	return s.setJSON(constants.KeyHabits, habits)
}

func (s *SQLiteStore) GetTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.getJSON(constants.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	return s.setJSON(constants.KeyTasks, tasks)
}

func (s *SQLiteStore) GetNotes() ([]models.Note, error) {
	var notes []models.Note
	if err := s.getJSON(constants.KeyNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *SQLiteStore) SaveNotes(notes []models.Note) error {
	return s.setJSON(constants.KeyNotes, notes)
}

func (s *SQLiteStore) GetChatHistory() ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := s.getJSON(constants.KeyChatHistory, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *SQLiteStore) SaveChatHistory(messages []models.ChatMessage) error {
	return s.setJSON(constants.KeyChatHistory, messages)
}

func (s *SQLiteStore) GetConfessionDate() (string, error) {
	var date string
	if err := s.getJSON(constants.KeyConfessionDate, &date); err != nil {
		return "", err
	}
	return date, nil
}

func (s *SQLiteStore) SaveConfessionDate(date string) error {
	if date == "" {
		return s.deleteKey(constants.KeyConfessionDate)
	}
	return s.setJSON(constants.KeyConfessionDate, date)
}

func (s *SQLiteStore) GetLastConfessionDate() (string, error) {
	var date string
	if err := s.getJSON(constants.KeyLastConfessionDate, &date); err != nil {
		return "", err
	}
	return date, nil
}

func (s *SQLiteStore) SaveLastConfessionDate(date string) error {
	if date == "" {
		return s.deleteKey(constants.KeyLastConfessionDate)
	}
	return s.setJSON(constants.KeyLastConfessionDate, date)
}

func (s *SQLiteStore) GetCachedAdvice(day string) (string, error) {
	var text string
	if err := s.getJSON(constants.KeyAdviceCachePrefix+day, &text); err != nil {
		return "", err
	}
	return text, nil
}

func (s *SQLiteStore) SaveCachedAdvice(day, text string) error {
	return s.setJSON(constants.KeyAdviceCachePrefix+day, text)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
