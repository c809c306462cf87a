package gateway

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// Connector выполняет bootstrap хранилища: подключение + анонимная идентичность
type Connector interface {
	Connect(ctx context.Context) (*Connection, error)
}

// Connection результат успешного bootstrap
type Connection struct {
	UID      string // анонимный идентификатор, которым помечаются лиды
	Leads    LeadStore
	Schedule ScheduleStore
	Settings SettingsStore
	Services ServiceStore
	Closer   func() error
}

// LeadStore хранилище лидов
type LeadStore interface {
	Create(ctx context.Context, lead *domain.Lead) (string, error)
	List(ctx context.Context, filter domain.LeadFilter) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error
	BusySlots(ctx context.Context, day string, statuses []domain.LeadStatus) ([]string, error)
}

// ScheduleStore расписание админа по дням
type ScheduleStore interface {
	List(ctx context.Context) ([]domain.DaySchedule, error)
	Get(ctx context.Context, day string) (*domain.DaySchedule, error)
	Set(ctx context.Context, day string, slots []string) error
	Delete(ctx context.Context, day string) error
}

// SettingsStore документ с правками пакетов
type SettingsStore interface {
	GetPackages(ctx context.Context) (map[string]domain.PackageOverride, error)
	SavePackages(ctx context.Context, packages map[string]domain.PackageOverride) error
}

// ServiceStore каталог дополнительных услуг
type ServiceStore interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (string, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// Metrics счётчик попыток bootstrap
type Metrics interface {
	IncBootstrap(success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
