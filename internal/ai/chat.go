package ai

import (
	"context"
	"strings"
	"sync"

	"github.com/yonasmekonnen/nesha/internal/i18n"
	"github.com/yonasmekonnen/nesha/internal/logger"
	"github.com/yonasmekonnen/nesha/internal/models"
)

// Chat is one companion conversation. History accumulates across turns so
// the model keeps context; Clear drops it. Send may run on a different
// goroutine than Clear (the TUI does exactly that), so history access is
// guarded and each Clear bumps a generation counter that invalidates any
// turn still in flight.
type Chat struct {
	client *Client

	mu      sync.Mutex
	gen     uint64
	history []content
}

// NewChat opens a conversation, or nil when the client is unavailable.
// Callers must degrade gracefully on nil (synthesize a local error message,
// never crash).
func (c *Client) NewChat() *Chat {
	if c == nil {
		return nil
	}
	return &Chat{client: c}
}

// Seed preloads prior transcript turns so a resumed conversation keeps its
// context.
func (ch *Chat) Seed(messages []models.ChatMessage) {
	if ch == nil {
		return
	}
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for _, m := range messages {
		if m.IsError {
			continue
		}
		if m.Role == models.RoleModel {
			ch.history = append(ch.history, modelContent(m.Text))
		} else {
			ch.history = append(ch.history, userContent(m.Text))
		}
	}
}

// Send submits one user turn and returns the reply text. On failure it
// returns the fixed chat error string and leaves the failed turn out of the
// history.
func (ch *Chat) Send(ctx context.Context, text string) string {
	if ch == nil {
		return i18n.T(models.LanguageEnglish).ChatUnavailable
	}

	ch.mu.Lock()
	gen := ch.gen
	turns := append(append([]content(nil), ch.history...), userContent(text))
	ch.mu.Unlock()

	reply, err := ch.client.generate(ctx, systemInstruction, turns, false)
	if err != nil || strings.TrimSpace(reply) == "" {
		logger.Warn("Chat turn failed", "error", err)
		return i18n.T(models.LanguageEnglish).ChatError
	}
	reply = strings.TrimSpace(reply)

	ch.mu.Lock()
	// A Clear that landed while this turn was in flight supersedes it; the
	// reply still goes to the caller but must not restore the dropped
	// context.
	if ch.gen == gen {
		ch.history = append(turns, modelContent(reply))
	}
	ch.mu.Unlock()
	return reply
}

// Clear discards the conversation context and invalidates in-flight turns.
func (ch *Chat) Clear() {
	if ch == nil {
		return
	}
	ch.mu.Lock()
	ch.gen++
	ch.history = nil
	ch.mu.Unlock()
}
