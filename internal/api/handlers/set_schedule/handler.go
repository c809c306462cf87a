package set_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate           = "нельзя менять расписание прошедшего дня"
	msgInvalidSlot        = "слот не входит в список допустимых"
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

// Handle PUT /api/v1/admin/schedule/{date}
// Пустой список слотов снимает день с расписания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := mux.Vars(r)["date"]

	var req schedule.SetDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetDay(r.Context(), day, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid date: %q", day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrPastDate):
			h.logger.Warn("PUT /admin/schedule/{date} - Past date: %s", day)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, schedule.ErrInvalidSlot):
			h.logger.Warn("PUT /admin/schedule/{date} - Invalid slot: date=%s, error=%v", day, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("PUT /admin/schedule/{date} - Failed to set day: date=%s, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule/{date} - Day updated: date=%s, slots=%d", day, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
