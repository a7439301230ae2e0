package app

import (
	"fmt"

	"github.com/yonasmekonnen/nesha/internal/models"
)

func (s *Service) SetLanguage(lang models.Language) error {
	if !models.ValidLanguage(string(lang)) {
		return fmt.Errorf("unsupported language %q (want am or en)", lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Language = lang
	persist("settings", s.store.SaveSettings(s.settings))
	return nil
}

func (s *Service) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DarkMode = enabled
	persist("settings", s.store.SaveSettings(s.settings))
}

func (s *Service) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Name = name
	persist("settings", s.store.SaveSettings(s.settings))
}

// ScheduleConfession sets the upcoming confession appointment. An empty date
// clears it. The last-confession date is untouched either way.
func (s *Service) ScheduleConfession(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.confessionDate = date
	persist("confession-date", s.store.SaveConfessionDate(date))
}

// ClearConfession unsets the upcoming appointment.
func (s *Service) ClearConfession() {
	s.ScheduleConfession("")
}

// LogConfession records the most recent confession and clears any
// appointment it fulfilled.
func (s *Service) LogConfession(date string) {
	if date == "" {
		date = Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastConfessionDate = date
	persist("last-confession-date", s.store.SaveLastConfessionDate(date))

	if s.confessionDate != "" && s.confessionDate <= date {
		s.confessionDate = ""
		persist("confession-date", s.store.SaveConfessionDate(""))
	}
}

// ClearLastConfession unsets the most recent confession date only.
func (s *Service) ClearLastConfession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastConfessionDate = ""
	persist("last-confession-date", s.store.SaveLastConfessionDate(""))
}
