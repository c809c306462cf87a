package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/booking"
	submitBooking "github.com/m04kA/LessonBookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные заявки"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgInProgress         = "заявка уже отправляется"
	msgAlreadySubmitted   = "заявка из этой сессии уже отправлена"
	msgValidationFailed   = "заявка не прошла проверку"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, r))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/submit - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, submitBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /sessions/{id}/submit - Submission in progress: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgInProgress)

		case errors.Is(err, submitBooking.ErrAlreadySubmitted):
			h.logger.Warn("POST /sessions/{id}/submit - Already submitted: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	switch result.Outcome {
	case booking.OutcomeSuccess:
		h.logger.Info("POST /sessions/{id}/submit - Lead created: session=%s, lead=%s", sessionID, result.LeadID)
		handlers.RespondJSON(w, http.StatusCreated, response)

	case booking.OutcomeRejected:
		h.logger.Info("POST /sessions/{id}/submit - Rejected by validation: session=%s, errors=%d",
			sessionID, len(result.Errors))
		if response.Message == "" {
			response.Message = msgValidationFailed
		}
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, response)

	default:
		h.logger.Warn("POST /sessions/{id}/submit - Storage rejected lead: session=%s, message=%s",
			sessionID, result.Message)
		handlers.RespondJSON(w, http.StatusBadGateway, response)
	}
}
