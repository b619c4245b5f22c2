package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TennisCourt-BookingService/internal/api/handlers"
	"github.com/m04kA/TennisCourt-BookingService/internal/auth"
)

// AdminAuth пропускает запрос только при валидной админской сессии
func AdminAuth(sessions *auth.SessionManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.IsAdmin(r) {
				handlers.RespondUnauthorized(w, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
