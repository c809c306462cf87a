package domain

import "time"

// Language UI language of a visitor
type Language string

const (
	LanguageDE Language = "de"
	LanguageRU Language = "ru"
	LanguageKO Language = "ko"
)

// SupportedLanguages known UI languages
var SupportedLanguages = []Language{LanguageDE, LanguageRU, LanguageKO}

// IsSupported returns true for a known language
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages {
		if l == s {
			return true
		}
	}
	return false
}

// IsTimeToken returns true for a well-formed HH:MM token
func IsTimeToken(s string) bool {
	if len(s) != len(TimeFormat) {
		return false
	}
	_, err := time.Parse(TimeFormat, s)
	return err == nil
}

// StartOfDay returns midnight of t's calendar day in loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayKey formats a day as YYYY-MM-DD in loc
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateFormat)
}

// ParseDay parses YYYY-MM-DD as midnight in loc
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, loc)
}
