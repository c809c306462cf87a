package get_language

import (
	"context"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

type LanguageResolver interface {
	Resolve(ctx context.Context, visitorID, acceptLanguage string) domain.Language
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
