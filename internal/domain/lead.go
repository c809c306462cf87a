package domain

import "time"

// LeadStatus represents the CRM status of a lead
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusValid     LeadStatus = "valid"
	LeadStatusHold      LeadStatus = "hold"
	LeadStatusTrash     LeadStatus = "trash"
	LeadStatusCompleted LeadStatus = "completed"
)

// LeadStatusInfo admin panel presentation of a status
type LeadStatusInfo struct {
	Label string
	Color string
}

// LeadStatuses порядок отображения статусов в админке
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusValid,
	LeadStatusHold,
	LeadStatusTrash,
	LeadStatusCompleted,
}

var leadStatusInfo = map[LeadStatus]LeadStatusInfo{
	LeadStatusNew:       {Label: "Новый", Color: "#3B82F6"},
	LeadStatusValid:     {Label: "Валидный", Color: "#22C55E"},
	LeadStatusHold:      {Label: "На удержании", Color: "#F59E0B"},
	LeadStatusTrash:     {Label: "Мусор", Color: "#EF4444"},
	LeadStatusCompleted: {Label: "Завершён", Color: "#6B7280"},
}

// BusyStatuses статусы, при которых слот лида считается занятым
var BusyStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusValid,
}

// IsValid returns true for a known status
func (s LeadStatus) IsValid() bool {
	_, ok := leadStatusInfo[s]
	return ok
}

// Info returns label and color, zero value for unknown statuses
func (s LeadStatus) Info() LeadStatusInfo {
	return leadStatusInfo[s]
}

// OccupiesSlot returns true if a lead in this status blocks its time slot
func (s LeadStatus) OccupiesSlot() bool {
	for _, busy := range BusyStatuses {
		if s == busy {
			return true
		}
	}
	return false
}

// Lead represents a persisted booking request
type Lead struct {
	ID           string
	Name         string
	Phone        string
	Goal         string
	Package      string
	Date         *time.Time // выбранный день (полночь в часовом поясе сервиса)
	Day          string     // YYYY-MM-DD, ключ для поиска занятых слотов
	Time         string     // HH:MM
	ReadableDate string
	Language     string

	Status     LeadStatus
	AdminNotes string

	// Metadata
	Platform    string
	UserAgent   string
	UID         string
	Referrer    string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeadFilter фильтр списка лидов в админке
type LeadFilter struct {
	Status *LeadStatus // nil - все статусы
}
