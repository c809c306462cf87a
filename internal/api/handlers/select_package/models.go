package select_package

import "github.com/m04kA/LessonBookingService/internal/api/handlers"

// SelectPackageRequest HTTP request model
type SelectPackageRequest struct {
	Key string `json:"key"`
}

// SelectPackageResponse HTTP response model
type SelectPackageResponse struct {
	Accepted bool                      `json:"accepted"`
	Session  *handlers.SessionResponse `json:"session"`
}
