package get_schedule_day

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

type ScheduleService interface {
	Day(ctx context.Context, day string) (*schedule.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
