package update_packages

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	SavePackages(ctx context.Context, req *models.UpdatePackagesRequest) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
