package catalog

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// SettingsGateway правки пакетов и каталог услуг в хранилище
type SettingsGateway interface {
	Packages(ctx context.Context) (map[string]domain.PackageOverride, error)
	SavePackages(ctx context.Context, packages map[string]domain.PackageOverride) error
	Services(ctx context.Context) ([]*domain.Service, error)
	AddService(ctx context.Context, service *domain.Service) (string, error)
	UpdateService(ctx context.Context, service *domain.Service) error
	DeleteService(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
