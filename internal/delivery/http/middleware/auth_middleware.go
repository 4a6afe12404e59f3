package middleware

import (
	"context"
	"net/http"
	"time"

	"ehr-backend/config"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/pkg/jwt"
	"ehr-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	DoctorIDKey  contextKey = "doctor_id"
	SessionIDKey contextKey = "session_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
	cookie      config.SessionConfig
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository, cookie config.SessionConfig, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
		cookie:      cookie,
		log:         log,
	}
}

// Authenticate rejects requests without a live session and stores the
// doctor id in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok, err := m.resolve(r)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional resolves the session when there is one but lets every request
// through.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok, err := m.resolve(r)
		if err != nil || !ok {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (context.Context, bool, error) {
	cookie, err := r.Cookie(m.cookie.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false, nil
	}

	claims, err := m.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return nil, false, nil
	}

	// The cookie is only a reference; the session must still exist server-side.
	exists, err := m.sessionRepo.Exists(r.Context(), claims.DoctorID, claims.SessionID)
	if err != nil {
		m.log.Warnf("Failed to check session in Redis: %+v", err)
		return nil, false, err
	}
	if !exists {
		return nil, false, nil
	}

	ctx := context.WithValue(r.Context(), DoctorIDKey, claims.DoctorID)
	ctx = context.WithValue(ctx, SessionIDKey, claims.SessionID)
	return ctx, true, nil
}

func (m *AuthMiddleware) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.cookie.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *AuthMiddleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetDoctorIDFromContext extracts the authenticated doctor id from context
func GetDoctorIDFromContext(ctx context.Context) (int64, bool) {
	doctorID, ok := ctx.Value(DoctorIDKey).(int64)
	return doctorID, ok
}

// GetSessionIDFromContext extracts session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}
