package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ehr-backend/config"
	"ehr-backend/internal/delivery/http/handler"
	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/pkg/jwt"
	"ehr-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:3000"

type liveSessions map[string]bool

func (s liveSessions) Create(ctx context.Context, doctorID int64, sessionID string, ttl time.Duration) error {
	s[sessionID] = true
	return nil
}

func (s liveSessions) Exists(ctx context.Context, doctorID int64, sessionID string) (bool, error) {
	return s[sessionID], nil
}

func (s liveSessions) Delete(ctx context.Context, doctorID int64, sessionID string) error {
	delete(s, sessionID)
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *jwt.JWTService, liveSessions) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	sessionCfg := config.SessionConfig{Secret: "router-secret", CookieName: "ehr_session", TTL: time.Hour}
	jwtService := jwt.NewJWTService(sessionCfg)
	sessions := liveSessions{}
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, sessionCfg, log)
	v := validator.NewValidator()

	router := NewRouter(
		log,
		testOrigin,
		handler.NewAuthHandler(nil, v, authMiddleware),
		handler.NewPatientHandler(nil, v),
		handler.NewVisitHandler(nil, v),
		handler.NewDocumentHandler(nil, 1<<20),
		handler.NewDigestiveHandler(nil, v),
		handler.NewEHRRecordHandler(nil, v),
		handler.NewAuditLogHandler(nil),
		authMiddleware,
	)
	return router.Setup(), jwtService, sessions
}

func TestRouter_Health(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	h, _, _ := newTestRouter(t)

	paths := []string{"/api/patients", "/api/patients/1", "/api/me", "/api/audit-logs", "/uploads/abc_scan.png"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Authentication required")
		})
	}
}

func TestRouter_CheckAuthWithSession(t *testing.T) {
	h, jwtService, sessions := newTestRouter(t)

	token, sessionID, err := jwtService.GenerateSessionToken(12)
	require.NoError(t, err)
	sessions[sessionID] = true

	req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
	req.AddCookie(&http.Cookie{Name: "ehr_session", Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doctor_id":12`)

	delete(sessions, sessionID)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/patients", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
