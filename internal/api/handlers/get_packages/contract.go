package get_packages

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Packages(ctx context.Context) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
