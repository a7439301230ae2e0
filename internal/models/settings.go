package models

type Language string

const (
	LanguageAmharic Language = "am"
	LanguageEnglish Language = "en"
)

// ValidLanguage reports whether s is one of the two supported locale tags.
func ValidLanguage(s string) bool {
	return Language(s) == LanguageAmharic || Language(s) == LanguageEnglish
}

// Settings represents application-wide settings. Language is the single
// source of UI locale.
type Settings struct {
	Language Language `json:"language"`
	DarkMode bool     `json:"dark_mode"`
	Name     string   `json:"name,omitempty"`
}

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Language: LanguageEnglish,
		DarkMode: false,
	}
}
