package language

import "context"

// PreferenceStore сохранённый выбор языка посетителя
type PreferenceStore interface {
	Get(ctx context.Context, visitorID string) (string, error)
	Set(ctx context.Context, visitorID, lang string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
