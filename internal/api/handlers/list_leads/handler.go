package list_leads

import (
	"errors"
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/leads"
	"github.com/m04kA/LessonBookingService/internal/service/leads/models"
)

const msgInvalidStatus = "некорректный статус, ожидается new, valid, hold, trash или completed"

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

// Handle GET /api/v1/admin/leads
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListLeadsRequest{}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, leads.ErrInvalidStatus) {
			h.logger.Warn("GET /admin/leads - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/leads - Failed to list leads: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/leads - Leads retrieved: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
