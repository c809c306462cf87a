package set_language

import (
	"errors"
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/api/middleware"
	"github.com/m04kA/LessonBookingService/internal/service/language"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLanguage    = "неподдерживаемый язык, ожидается de, ru или ko"
	msgMissingVisitor     = "не удалось определить посетителя"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

type Handler struct {
	languages LanguageService
	sessions  SessionRegistry
	logger    Logger
}

func NewHandler(languages LanguageService, sessions SessionRegistry, logger Logger) *Handler {
	return &Handler{
		languages: languages,
		sessions:  sessions,
		logger:    logger,
	}
}

// Handle PUT /api/v1/language
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /language - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	visitorID, ok := middleware.GetVisitorID(r.Context())
	if !ok {
		h.logger.Error("PUT /language - Visitor id missing from context")
		handlers.RespondBadRequest(w, msgMissingVisitor)
		return
	}

	lang, err := h.languages.Set(r.Context(), visitorID, req.Language)
	if err != nil {
		if errors.Is(err, language.ErrUnsupportedLanguage) {
			h.logger.Warn("PUT /language - Unsupported language: %q", req.Language)
			handlers.RespondBadRequest(w, msgInvalidLanguage)
			return
		}
		h.logger.Error("PUT /language - Failed to store language: visitor=%s, error=%v", visitorID, err)
		handlers.RespondInternalError(w)
		return
	}

	if req.SessionID != "" {
		session, err := h.sessions.Get(req.SessionID)
		if err != nil {
			if errors.Is(err, sessions.ErrSessionNotFound) {
				h.logger.Warn("PUT /language - Session not found: session=%s", req.SessionID)
				handlers.RespondNotFound(w, msgSessionNotFound)
				return
			}
			h.logger.Error("PUT /language - Failed to get session: session=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
			return
		}
		session.SetLanguage(lang)
	}

	h.logger.Info("PUT /language - Language set: visitor=%s, language=%s", visitorID, lang)
	handlers.RespondJSON(w, http.StatusOK, &SetLanguageResponse{Language: string(lang)})
}
