package get_schedule_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["date"]

	result, err := h.service.Day(r.Context(), day)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			h.logger.Warn("GET /admin/schedule/{date} - Invalid date: %q", day)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/schedule/{date} - Failed to get day: date=%s, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
