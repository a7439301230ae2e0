package app

import (
	"strings"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// AddNote prepends a new note (newest first). Empty or whitespace-only
// content is a silent no-op.
func (s *Service) AddNote(content string) (models.Note, bool) {
	if strings.TrimSpace(content) == "" {
		return models.Note{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	note := models.Note{
		ID:        newID(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]models.Note{note}, s.notes...)
	persist("notes", s.store.SaveNotes(s.notes))
	return note, true
}

// UpdateNote replaces the note content and bumps UpdatedAt. Blank content is
// rejected the same way as on add; an absent id is a no-op.
func (s *Service) UpdateNote(id, content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			n := s.notes[i]
			n.Content = content
			n.UpdatedAt = time.Now()
			s.notes[i] = n
			persist("notes", s.store.SaveNotes(s.notes))
			return true
		}
	}
	return false
}

// DeleteNote removes the note; no-op if the id is absent.
func (s *Service) DeleteNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Note, 0, len(s.notes))
	found := false
	for _, n := range s.notes {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if found {
		s.notes = kept
		persist("notes", s.store.SaveNotes(s.notes))
	}
	return found
}
