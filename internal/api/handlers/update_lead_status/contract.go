package update_lead_status

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/leads/models"
)

type LeadsService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
