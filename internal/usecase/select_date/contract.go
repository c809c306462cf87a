package select_date

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/booking"
)

// SessionRegistry реестр сессий бронирования
type SessionRegistry interface {
	Get(id string) (*booking.Session, error)
}

// BusySlotsGateway занятые слоты дня
type BusySlotsGateway interface {
	BusySlots(ctx context.Context, day string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
