package models

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one entry in the companion conversation. Ordering within a
// conversation is insertion order, not timestamp comparison.
type ChatMessage struct {
	ID        string   `json:"id"`
	Role      ChatRole `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"` // unix milliseconds at send time
	IsError   bool     `json:"is_error,omitempty"`
}
