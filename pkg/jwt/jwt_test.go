package jwt

import (
	"testing"
	"time"

	"ehr-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(ttl time.Duration) *JWTService {
	return NewJWTService(config.SessionConfig{Secret: "test-secret", TTL: ttl})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, sessionID, err := svc.GenerateSessionToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.DoctorID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateSessionToken(1)
	require.NoError(t, err)

	other := NewJWTService(config.SessionConfig{Secret: "other", TTL: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, _, err := newTestService(-time.Minute).GenerateSessionToken(1)
	require.NoError(t, err)

	_, err = newTestService(time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestService(time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
