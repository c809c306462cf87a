package language

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/i18n"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/preference"
)

// Service выбор языка интерфейса
type Service struct {
	store    PreferenceStore
	fallback domain.Language
	logger   Logger
}

// NewService fallback используется, когда ни сохранённый язык, ни браузер не подошли
func NewService(store PreferenceStore, fallback domain.Language, logger Logger) *Service {
	return &Service{store: store, fallback: fallback, logger: logger}
}

// Resolve сохранённый язык, затем язык браузера, затем fallback
func (s *Service) Resolve(ctx context.Context, visitorID, acceptLanguage string) domain.Language {
	var stored string
	if visitorID != "" {
		lang, err := s.store.Get(ctx, visitorID)
		switch {
		case err == nil:
			stored = lang
		case errors.Is(err, preference.ErrPreferenceNotFound):
		default:
			// недоступное хранилище не мешает показать виджет
			s.logger.Warn("Resolve: preference store error for visitor=%s: %v", visitorID, err)
		}
	}
	return i18n.Resolve(stored, acceptLanguage, s.fallback)
}

// Set запоминает выбор посетителя
func (s *Service) Set(ctx context.Context, visitorID, lang string) (domain.Language, error) {
	l := domain.Language(strings.ToLower(strings.TrimSpace(lang)))
	if !l.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	if err := s.store.Set(ctx, visitorID, string(l)); err != nil {
		s.logger.Error("Set: failed to store language for visitor=%s: %v", visitorID, err)
		return "", fmt.Errorf("%w: Set - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: visitor=%s language=%s", visitorID, l)
	return l, nil
}
