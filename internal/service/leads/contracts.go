package leads

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// LeadGateway доступ к лидам через шлюз хранилища
type LeadGateway interface {
	ListLeads(ctx context.Context, status *domain.LeadStatus) ([]*domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
