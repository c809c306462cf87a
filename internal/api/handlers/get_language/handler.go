package get_language

import (
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/api/middleware"
	"github.com/m04kA/LessonBookingService/internal/domain"
)

type Handler struct {
	languages LanguageResolver
	logger    Logger
}

func NewHandler(languages LanguageResolver, logger Logger) *Handler {
	return &Handler{
		languages: languages,
		logger:    logger,
	}
}

// Handle GET /api/v1/language
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := middleware.GetVisitorID(r.Context())
	lang := h.languages.Resolve(r.Context(), visitorID, r.Header.Get("Accept-Language"))

	supported := make([]string, 0, len(domain.SupportedLanguages))
	for _, l := range domain.SupportedLanguages {
		supported = append(supported, string(l))
	}

	handlers.RespondJSON(w, http.StatusOK, &LanguageResponse{
		Language:  string(lang),
		Supported: supported,
	})
}
