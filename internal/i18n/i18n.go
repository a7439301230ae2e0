// Package i18n holds the two UI string tables. Settings.Language picks the
// active table; there is no runtime string formatting beyond simple labels.
package i18n

import "github.com/yonasmekonnen/nesha/internal/models"

// Strings is the full set of localized UI text.
type Strings struct {
	Greeting    string
	DailyWisdom string
	Loading     string
	Today       string
	Pending     string
	Habits      string
	Tasks       string
	Notes       string
	Chat        string
	Settings    string
	AddHabit    string
	AddTask     string
	AddNote     string
	Weekly      string

	// AI degradation strings. OfflineAdvice is returned when no credential
	// is configured, AdviceError when a request fails, ChatError when a
	// chat turn fails, ChatUnavailable when no session could be created.
	OfflineAdvice   string
	AdviceError     string
	ChatError       string
	ChatUnavailable string

	ConfessionTitle  string
	ConfessionPrompt string
	ConfessionVerse  string
}

var english = Strings{
	Greeting:    "Selam",
	DailyWisdom: "Daily Wisdom",
	Loading:     "Thinking...",
	Today:       "Today",
	Pending:     "pending",
	Habits:      "Habits",
	Tasks:       "Tasks",
	Notes:       "Notes",
	Chat:        "Chat",
	Settings:    "Settings",
	AddHabit:    "Add Habit",
	AddTask:     "Add Task",
	AddNote:     "Add Note",
	Weekly:      "Weekly",

	OfflineAdvice:   "Daily Wisdom: Patience is the beginning of wisdom. (AI Offline)",
	AdviceError:     "Could not fetch advice.",
	ChatError:       "ይቅርታ፣ አሁን መልስ መስጠት አልችልም። (Error)",
	ChatUnavailable: "System Error: AI not initialized.",

	ConfessionTitle:  "Confession",
	ConfessionPrompt: "When was your last confession?",
	ConfessionVerse:  "If we confess our sins, he is faithful and just to forgive us our sins. (1 John 1:9)",
}

var amharic = Strings{
	Greeting:    "ሰላም",
	DailyWisdom: "የዕለቱ ጥበብ",
	Loading:     "በማሰብ ላይ...",
	Today:       "ዛሬ",
	Pending:     "ያልተጠናቀቁ",
	Habits:      "ልማዶች",
	Tasks:       "ተግባራት",
	Notes:       "ማስታወሻዎች",
	Chat:        "ውይይት",
	Settings:    "ቅንብሮች",
	AddHabit:    "ልማድ ጨምር",
	AddTask:     "ተግባር ጨምር",
	AddNote:     "ማስታወሻ ጨምር",
	Weekly:      "ሳምንታዊ",

	OfflineAdvice:   "የዛሬ ምክር: ትዕግስት የጥበብ መጀመሪያ ነው። (AI አልተገናኘም)",
	AdviceError:     "ምክር ማምጣት አልተቻለም።",
	ChatError:       "ይቅርታ፣ አሁን መልስ መስጠት አልችልም። (Error)",
	ChatUnavailable: "System Error: AI not initialized.",

	ConfessionTitle:  "ንስሐ",
	ConfessionPrompt: "መጨረሻ የተናዘዙት መቼ ነበር?",
	ConfessionVerse:  "ኃጢአታችንን ብንናዘዝ ኃጢአታችንን ይቅር ሊለን የታመነና ጻድቅ ነው። (1ኛ ዮሐ 1፥9)",
}

// T returns the string table for the given language, falling back to English
// for anything unrecognized.
func T(lang models.Language) Strings {
	if lang == models.LanguageAmharic {
		return amharic
	}
	return english
}
