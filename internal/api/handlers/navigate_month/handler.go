package navigate_month

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDelta       = "некорректное смещение месяца"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

type Handler struct {
	sessions SessionRegistry
	logger   Logger
}

func NewHandler(sessions SessionRegistry, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req NavigateMonthRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/month - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Delta > maxDelta || req.Delta < -maxDelta {
		h.logger.Warn("POST /sessions/{id}/month - Delta out of range: %d", req.Delta)
		handlers.RespondBadRequest(w, msgInvalidDelta)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/month - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/month - Failed to get session: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	session.NavigateMonth(req.Delta)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(session.Snapshot()))
}
