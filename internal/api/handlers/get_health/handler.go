package get_health

import (
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
)

// HealthResponse HTTP response model
type HealthResponse struct {
	Status           string `json:"status"`
	StorageConnected bool   `json:"storageConnected"`
	ActiveSessions   int    `json:"activeSessions"`
}

type Handler struct {
	storage  StorageStatus
	sessions SessionCounter
}

func NewHandler(storage StorageStatus, sessions SessionCounter) *Handler {
	return &Handler{
		storage:  storage,
		sessions: sessions,
	}
}

// Handle GET /health
// Хранилище подключается лениво, поэтому его отсутствие не делает сервис нездоровым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &HealthResponse{
		Status:           "ok",
		StorageConnected: h.storage.Connected(),
		ActiveSessions:   h.sessions.Count(),
	})
}
