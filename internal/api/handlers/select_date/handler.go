package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	selectDate "github.com/m04kA/LessonBookingService/internal/usecase/select_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия не найдена или истекла"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(sessionID, &req))
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/date - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectDate.ErrInvalidDate):
			h.logger.Warn("POST /sessions/{id}/date - Invalid date: session=%s, date=%q", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /sessions/{id}/date - Failed to select date: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Прошедший или заблокированный день не ошибка: accepted=false
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
