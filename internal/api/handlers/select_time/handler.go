package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/time - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/time - Failed to get session: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Без даты, занятый или неизвестный слот игнорируется
	accepted := session.SelectTime(req.Time)
	if !accepted {
		h.logger.Info("POST /sessions/{id}/time - Slot not accepted: session=%s, time=%q", sessionID, req.Time)
	}

	handlers.RespondJSON(w, http.StatusOK, &SelectTimeResponse{
		Accepted: accepted,
		Session:  handlers.FromSnapshot(session.Snapshot()),
	})
}
