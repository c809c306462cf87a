package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/api/middleware"
	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLanguage    = "неподдерживаемый язык, ожидается de, ru или ko"
	msgTooManySessions    = "сервис перегружен, попробуйте позже"
)

type Handler struct {
	sessions  SessionCreator
	languages LanguageResolver
	logger    Logger
}

func NewHandler(sessions SessionCreator, languages LanguageResolver, logger Logger) *Handler {
	return &Handler{
		sessions:  sessions,
		languages: languages,
		logger:    logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Явно переданный язык важнее сохранённого
	var lang domain.Language
	if req.Language != nil {
		lang = domain.Language(*req.Language)
		if !lang.IsSupported() {
			h.logger.Warn("POST /sessions - Unsupported language: %q", *req.Language)
			handlers.RespondBadRequest(w, msgInvalidLanguage)
			return
		}
	} else {
		visitorID, _ := middleware.GetVisitorID(r.Context())
		lang = h.languages.Resolve(r.Context(), visitorID, r.Header.Get("Accept-Language"))
	}

	session, err := h.sessions.Create(r.Context(), lang)
	if err != nil {
		if errors.Is(err, sessions.ErrTooManySessions) {
			h.logger.Warn("POST /sessions - Session registry is full")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManySessions)
			return
		}
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: session=%s, language=%s", session.ID(), lang)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(session.Snapshot()))
}
