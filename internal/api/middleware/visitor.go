package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// VisitorCookie cookie с идентификатором посетителя
	VisitorCookie = "visitor_id"

	visitorCookieMaxAge = 365 * 24 * time.Hour
	visitorIDKey        contextKey = "visitorID"
)

// Visitor выдаёт посетителю постоянный id, если cookie ещё нет
func Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(VisitorCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(visitorCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorIDKey, id)))
	})
}

// GetVisitorID id посетителя из контекста
func GetVisitorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey).(string)
	return id, ok && id != ""
}
