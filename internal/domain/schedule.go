package domain

import "time"

// DaySchedule admin-defined slots for one calendar day
type DaySchedule struct {
	Date      string // YYYY-MM-DD
	Slots     []string
	UpdatedAt time.Time
}

// Service represents an additional offering managed in the admin panel
type Service struct {
	ID          string
	Name        string
	Price       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
