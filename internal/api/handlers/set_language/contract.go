package set_language

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/domain"
)

type LanguageService interface {
	Set(ctx context.Context, visitorID, lang string) (domain.Language, error)
}

type SessionRegistry interface {
	Get(id string) (*booking.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
