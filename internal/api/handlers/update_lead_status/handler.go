package update_lead_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/leads"
	"github.com/m04kA/LessonBookingService/internal/service/leads/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается new, valid, hold, trash или completed"
	msgLeadNotFound       = "лид не найден"
)

type Handler struct {
	service LeadsService
	logger  Logger
}

func NewHandler(service LeadsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/leads/{leadId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leadID := mux.Vars(r)["leadId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/leads/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), leadID, &req); err != nil {
		switch {
		case errors.Is(err, leads.ErrInvalidStatus), errors.Is(err, leads.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/leads/{id}/status - Invalid status: lead=%s, status=%q", leadID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, leads.ErrLeadNotFound):
			h.logger.Warn("PATCH /admin/leads/{id}/status - Lead not found: lead=%s", leadID)
			handlers.RespondNotFound(w, msgLeadNotFound)

		default:
			h.logger.Error("PATCH /admin/leads/{id}/status - Failed to update status: lead=%s, error=%v", leadID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status, _ := models.ToDomainLeadStatus(req.Status)
	h.logger.Info("PATCH /admin/leads/{id}/status - Status updated: lead=%s, status=%s", leadID, status)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainStatus(status))
}
