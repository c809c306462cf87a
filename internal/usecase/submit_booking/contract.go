package submit_booking

import (
	"github.com/m04kA/LessonBookingService/internal/booking"
)

// SessionRegistry реестр сессий бронирования
type SessionRegistry interface {
	Get(id string) (*booking.Session, error)
}

// Metrics счётчики отправок
type Metrics interface {
	IncSubmission(outcome string)
	IncValidationError(field string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
