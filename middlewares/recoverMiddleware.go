package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
)

// Recover turns panics into a bare 500 and logs the value with its stack.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(log.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)
}

// CORS allows any origin, matching the public table-side clients.
func CORS(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", AdminTokenHeader, RequestIDHeader}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)(next)
}
