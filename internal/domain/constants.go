package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Lead defaults applied when the form leaves a field empty
const (
	DefaultPackageKey = "single"
	DefaultReferrer   = "direct"
	DefaultPlatform   = "web_v2"
	AnonymousName     = "Аноним"
	UnknownPhone      = "Не указан"
)

// Business validation constants
const (
	MinNameLength        = 2
	MinPhoneLength       = 5
	MaxNameLength        = 100
	MaxPhoneLength       = 32
	MaxGoalLength        = 1000
	MaxServiceNameLength = 200
	MaxDescriptionLength = 2000
	MaxUTMLength         = 200
)

// DefaultTimeSlots фиксированный набор слотов занятий на день
var DefaultTimeSlots = []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"}
