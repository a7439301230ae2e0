package constants

import "time"

const (
	AppName           = "nesha"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/nesha/nesha.json"

	// DateFormat is the standard calendar-date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// KeyringAPIKeyUser identifies the Gemini API key entry in the OS keyring
	KeyringAPIKeyUser = "gemini-api-key"
	// APIKeyEnvVar is checked before the keyring
	APIKeyEnvVar = "GEMINI_API_KEY"

	// Storage keys. One JSON-encoded value per key.
	KeySettings           = "settings"
	KeyHabits             = "habits"
	KeyTasks              = "tasks"
	KeyNotes              = "notes"
	KeyChatHistory        = "chat-history"
	KeyConfessionDate     = "confession-date"
	KeyLastConfessionDate = "last-confession-date"
	// KeyAdviceCachePrefix prefixes one cache entry per calendar day
	KeyAdviceCachePrefix = "advice-cache-"

	// ConfessionOverdueDays is how long after the last confession the
	// reminder starts nudging
	ConfessionOverdueDays = 30

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotificationDurationMs = 5000
	NotifierLockfileName   = "nesha-notifier.lock"
	TrayAppIdentifier      = "com.yonasmekonnen.nesha"
)
