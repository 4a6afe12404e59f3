package middleware

import (
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"ehr-backend/pkg/response"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// NewLoggingMiddleware logs one structured line per request.
func NewLoggingMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, next, func(_ io.Writer, params handlers.LogFormatterParams) {
			entry := log.WithFields(logrus.Fields{
				"method":   params.Request.Method,
				"path":     params.URL.Path,
				"status":   params.StatusCode,
				"size":     params.Size,
				"duration": time.Since(params.TimeStamp).String(),
			})
			if params.StatusCode >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Info("request handled")
		})
	}
}

// NewRecoveryMiddleware turns handler panics into 500 responses using the
// regular error envelope.
func NewRecoveryMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					log.WithFields(logrus.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"panic":  err,
					}).Errorf("Recovered from panic: %s", debug.Stack())
					response.InternalServerError(w, "")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
