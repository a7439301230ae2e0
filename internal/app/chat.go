package app

import (
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// AppendChatMessage records one conversation turn. Ordering is insertion
// order; the timestamp is informational.
func (s *Service) AppendChatMessage(role models.ChatRole, text string, isError bool) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        newID(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
		IsError:   isError,
	}
	s.chat = append(s.chat, msg)
	persist("chat-history", s.store.SaveChatHistory(s.chat))
	return msg
}

// ClearChat drops the persisted transcript. Callers should also reset their
// chat session so the model forgets the cleared context.
func (s *Service) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chat = nil
	persist("chat-history", s.store.SaveChatHistory(nil))
}
