package sessions

import (
	"context"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// CatalogProvider текущий каталог пакетов с правками из админки
type CatalogProvider interface {
	Catalog(ctx context.Context) domain.Catalog
}

// Metrics gauge активных сессий
type Metrics interface {
	SetActiveSessions(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
