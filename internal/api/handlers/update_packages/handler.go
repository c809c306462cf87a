package update_packages

import (
	"errors"
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/catalog"
	"github.com/m04kA/LessonBookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownPackage     = "неизвестный пакет"
	msgInvalidData        = "некорректные данные пакета"
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

// Handle PUT /api/v1/admin/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePackagesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SavePackages(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownPackage):
			h.logger.Warn("PUT /admin/packages - Unknown package: %v", err)
			handlers.RespondBadRequest(w, msgUnknownPackage)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/packages - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/packages - Failed to save packages: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/packages - Packages saved: edited=%d", len(req.Packages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
