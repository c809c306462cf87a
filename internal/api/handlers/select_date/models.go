package select_date

import (
	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	selectDate "github.com/m04kA/LessonBookingService/internal/usecase/select_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-10-21"
}

// SelectDateResponse HTTP response model
type SelectDateResponse struct {
	Accepted   bool                      `json:"accepted"`
	BusyLoaded bool                      `json:"busyLoaded"`
	Session    *handlers.SessionResponse `json:"session"`
}

func ToUseCaseRequest(sessionID string, req *SelectDateRequest) *selectDate.Request {
	return &selectDate.Request{
		SessionID: sessionID,
		Date:      req.Date,
	}
}

func FromUseCaseResponse(resp *selectDate.Response) *SelectDateResponse {
	return &SelectDateResponse{
		Accepted:   resp.Accepted,
		BusyLoaded: resp.BusyLoaded,
		Session:    handlers.FromSnapshot(resp.Snapshot),
	}
}
