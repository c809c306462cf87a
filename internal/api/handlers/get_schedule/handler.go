package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

const (
	msgInvalidYear  = "некорректный год"
	msgInvalidMonth = "некорректный месяц, ожидается 1..12"
)

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

// Handle GET /api/v1/admin/schedule
// Query params: year, month (optional, по умолчанию текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1970 || y > 9999 {
			h.logger.Warn("GET /admin/schedule - Invalid year: %q", v)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			h.logger.Warn("GET /admin/schedule - Invalid month: %q", v)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = m
	}

	result, err := h.service.Month(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /admin/schedule - Failed to get schedule: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/schedule - Schedule retrieved: year=%d, month=%d, days=%d", year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
