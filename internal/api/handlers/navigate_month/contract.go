package navigate_month

import "github.com/m04kA/LessonBookingService/internal/booking"

type SessionRegistry interface {
	Get(id string) (*booking.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
