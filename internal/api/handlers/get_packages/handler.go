package get_packages

import (
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/packages и GET /api/v1/admin/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.Packages(r.Context())
	if err != nil {
		h.logger.Error("GET /packages - Failed to get packages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, packages)
}
