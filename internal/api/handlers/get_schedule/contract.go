package get_schedule

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

type ScheduleService interface {
	Month(ctx context.Context, year int, month int) (*schedule.MonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
