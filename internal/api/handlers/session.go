package handlers

import (
	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/domain"
)

// DayCellResponse день в сетке месяца
type DayCellResponse struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Past     bool   `json:"past,omitempty"`
	Blocked  bool   `json:"blocked,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
}

// MonthResponse сетка месяца
type MonthResponse struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"` // 1..12
	Title        string            `json:"title"`
	FirstWeekday int               `json:"firstWeekday"` // 0 - воскресенье
	Offset       int               `json:"offset"`
	Days         []DayCellResponse `json:"days"`
}

// SlotResponse слот выбранного дня
type SlotResponse struct {
	Time     string `json:"time"`
	Busy     bool   `json:"busy"`
	Selected bool   `json:"selected"`
}

// PackageResponse пакет каталога
type PackageResponse struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Price     string `json:"price"`
	BadgeText string `json:"badgeText,omitempty"`
}

// FormResponse последние отправленные значения формы
type FormResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Goal  string `json:"goal"`
}

// SessionResponse снимок сессии виджета
type SessionResponse struct {
	ID           string            `json:"id"`
	Language     string            `json:"language"`
	State        string            `json:"state"`
	LeadID       string            `json:"leadId,omitempty"`
	LastError    string            `json:"lastError,omitempty"`
	Month        MonthResponse     `json:"month"`
	SelectedDate *string           `json:"selectedDate,omitempty"` // "2026-10-19"
	SelectedTime string            `json:"selectedTime,omitempty"`
	ReadableDate string            `json:"readableDate,omitempty"`
	Slots        []SlotResponse    `json:"slots"`
	Package      *PackageResponse  `json:"package,omitempty"`
	Catalog      []PackageResponse `json:"catalog"`
	Form         FormResponse      `json:"form"`
}

// FromSnapshot конвертирует снимок сессии в HTTP response
func FromSnapshot(s booking.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:           s.ID,
		Language:     string(s.Language),
		State:        string(s.State),
		LeadID:       s.LeadID,
		LastError:    s.LastError,
		Month:        fromMonthView(s.Month, s.MonthTitle),
		SelectedTime: s.SelectedTime,
		ReadableDate: s.ReadableDate,
		Slots:        make([]SlotResponse, 0, len(s.Slots)),
		Catalog:      make([]PackageResponse, 0, len(s.Catalog)),
		Form: FormResponse{
			Name:  s.Form.Name,
			Phone: s.Form.Phone,
			Goal:  s.Form.Goal,
		},
	}

	if s.SelectedDate != nil {
		date := s.SelectedDate.Format(domain.DateFormat)
		resp.SelectedDate = &date
	}
	for _, slot := range s.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{Time: slot.Time, Busy: slot.Busy, Selected: slot.Selected})
	}
	for _, p := range s.Catalog {
		resp.Catalog = append(resp.Catalog, FromPackage(p))
	}
	if s.Package != nil {
		p := FromPackage(*s.Package)
		resp.Package = &p
	}
	return resp
}

func FromPackage(p domain.Package) PackageResponse {
	return PackageResponse{
		Key:       p.Key,
		Label:     p.Label,
		Price:     p.Price,
		BadgeText: p.BadgeText,
	}
}

func fromMonthView(m booking.MonthView, title string) MonthResponse {
	days := make([]DayCellResponse, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, DayCellResponse{
			Day:      d.Day,
			Date:     d.Date,
			Past:     d.Past,
			Blocked:  d.Blocked,
			Today:    d.Today,
			Selected: d.Selected,
		})
	}
	return MonthResponse{
		Year:         m.Year,
		Month:        int(m.Month),
		Title:        title,
		FirstWeekday: int(m.FirstWeekday),
		Offset:       m.Offset,
		Days:         days,
	}
}
