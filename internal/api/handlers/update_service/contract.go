package update_service

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
