package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// NewCORSMiddleware allows the single frontend origin to call the API with
// cookies.
func NewCORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{allowedOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
}
