package select_time

import "github.com/m04kA/LessonBookingService/internal/api/handlers"

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "09:00"
}

// SelectTimeResponse HTTP response model
type SelectTimeResponse struct {
	Accepted bool                      `json:"accepted"`
	Session  *handlers.SessionResponse `json:"session"`
}
