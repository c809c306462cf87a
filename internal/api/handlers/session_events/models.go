package session_events

import (
	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/domain"
)

// EventResponse уведомление сессии в websocket
type EventResponse struct {
	Type      string                    `json:"type"`
	Year      int                       `json:"year,omitempty"`
	Month     int                       `json:"month,omitempty"`
	Date      string                    `json:"date,omitempty"`
	Time      string                    `json:"time,omitempty"`
	BusySlots []string                  `json:"busySlots,omitempty"`
	Package   *handlers.PackageResponse `json:"package,omitempty"`
	State     string                    `json:"state,omitempty"`
	LeadID    string                    `json:"leadId,omitempty"`
	Message   string                    `json:"message,omitempty"`
}

func FromEvent(e booking.Event) *EventResponse {
	resp := &EventResponse{
		Type:      string(e.Type),
		Year:      e.Year,
		Month:     int(e.Month),
		Time:      e.Time,
		BusySlots: e.BusySlots,
		State:     string(e.State),
		LeadID:    e.LeadID,
		Message:   e.Message,
	}
	if !e.Date.IsZero() {
		resp.Date = e.Date.Format(domain.DateFormat)
	}
	if e.Package != nil {
		p := handlers.FromPackage(*e.Package)
		resp.Package = &p
	}
	return resp
}
