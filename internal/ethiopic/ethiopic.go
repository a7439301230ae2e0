// Package ethiopic converts Gregorian dates to the Ethiopian calendar and
// formats them for display. The Ethiopian calendar has twelve 30-day months
// followed by Pagume, a short 13th month of 5 or 6 days. Conversion is
// anchor-based: find the most recent Ethiopian new year (Meskerem 1) on or
// before the target date and divide the elapsed days by 30.
package ethiopic

import (
	"fmt"
	"time"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// Date is a date in the Ethiopian calendar. Month is a 0-based index where
// 12 is Pagume.
type Date struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Date      int    `json:"date"`
	DayName   string `json:"day_name"`
	MonthName string `json:"month_name"`
}

var monthsEN = [13]string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit",
	"Megabit", "Miazia", "Genbot", "Sene", "Hamle", "Nehase", "Pagume",
}

var monthsAM = [13]string{
	"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት",
	"መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// NewYearDay returns the Gregorian September day on which the Ethiopian new
// year falls for the given Gregorian year: 12 in the year immediately
// preceding a Gregorian leap year, 11 otherwise.
func NewYearDay(gregorianYear int) int {
	if gregorianYear%4 == 3 {
		return 12
	}
	return 11
}

// Convert converts a Gregorian date to its Ethiopian equivalent. It is pure
// and total over any valid calendar date; only the year, month, and day of t
// are significant.
func Convert(t time.Time) Date {
	day := civil(t)

	anchor := newYearAnchor(day.Year())
	if day.Before(anchor) {
		anchor = newYearAnchor(day.Year() - 1)
	}

	offset := int(day.Sub(anchor).Hours() / 24)
	month := offset / 30
	if month > 12 {
		// A 6-day Pagume can push the division past the table.
		month = 12
	}

	return Date{
		Year:      anchor.Year() - 7,
		Month:     month,
		Date:      offset%30 + 1,
		DayName:   dayNames[int(day.Weekday())],
		MonthName: MonthName(month, models.LanguageEnglish),
	}
}

// Today converts the current date.
func Today() Date {
	return Convert(time.Now())
}

// Format renders an Ethiopian date as "<monthName> <date>, <year>" with the
// month name in the requested language.
func Format(d Date, lang models.Language) string {
	return fmt.Sprintf("%s %d, %d", MonthName(d.Month, lang), d.Date, d.Year)
}

// MonthName looks up the month name for a 0-based index, empty when the
// index is out of range.
func MonthName(month int, lang models.Language) string {
	if month < 0 || month > 12 {
		return ""
	}
	if lang == models.LanguageAmharic {
		return monthsAM[month]
	}
	return monthsEN[month]
}

// newYearAnchor returns Meskerem 1 (UTC midnight) for the Ethiopian year
// beginning in the given Gregorian year.
func newYearAnchor(gregorianYear int) time.Time {
	return time.Date(gregorianYear, time.September, NewYearDay(gregorianYear), 0, 0, 0, 0, time.UTC)
}

// civil truncates t to a UTC midnight carrying only its calendar day, so day
// arithmetic is immune to zones and DST.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
