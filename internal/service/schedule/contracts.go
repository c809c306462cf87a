package schedule

import (
	"context"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// ScheduleGateway расписание админки в хранилище
type ScheduleGateway interface {
	Schedule(ctx context.Context) ([]domain.DaySchedule, error)
	ScheduleForDate(ctx context.Context, day string) (*domain.DaySchedule, error)
	SetScheduleForDate(ctx context.Context, day string, slots []string) error
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
