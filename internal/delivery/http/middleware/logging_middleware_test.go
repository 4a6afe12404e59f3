package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryMiddleware_WritesErrorEnvelope(t *testing.T) {
	log, hook := test.NewNullLogger()
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil visit")
	})
	h := NewLoggingMiddleware(log)(NewRecoveryMiddleware(log)(panicking))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/visits/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.ErrorLevel, entries[0].Level)
	assert.Equal(t, "nil visit", entries[0].Data["panic"])
	assert.Equal(t, "/api/visits/1", entries[1].Data["path"])
	assert.Equal(t, http.StatusInternalServerError, entries[1].Data["status"])
}

func TestRecoveryMiddleware_PassesThrough(t *testing.T) {
	log, hook := test.NewNullLogger()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	NewRecoveryMiddleware(log)(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, hook.AllEntries())
}
