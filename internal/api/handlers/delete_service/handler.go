package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /admin/services/{id} - Service not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: id=%s", serviceID)
	handlers.RespondNoContent(w)
}
