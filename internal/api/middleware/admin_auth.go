package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
)

const (
	msgMissingToken = "требуется токен администратора"
	msgInvalidToken = "недействительный токен администратора"
)

type contextKey string

const adminClaimsKey contextKey = "adminClaims"

// AdminJWT пропускает запросы с Bearer-токеном, подписанным HMAC-секретом
func AdminJWT(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if secret == "" || !strings.HasPrefix(auth, "Bearer ") {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			claims := jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), &claims,
				func(token *jwt.Token) (any, error) {
					if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return []byte(secret), nil
				})
			if err != nil || !token.Valid {
				logger.Warn("%s %s - Invalid admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminClaims claims проверенного токена, если он был
func AdminClaims(ctx context.Context) (jwt.RegisteredClaims, bool) {
	claims, ok := ctx.Value(adminClaimsKey).(jwt.RegisteredClaims)
	return claims, ok
}
