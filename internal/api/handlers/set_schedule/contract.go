package set_schedule

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

type ScheduleService interface {
	SetDay(ctx context.Context, day string, req *schedule.SetDayRequest) (*schedule.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
