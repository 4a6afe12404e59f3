package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"
	"ehr-backend/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, body *strings.Reader) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestAuthHandler_RegisterDuplicates(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{usecase.ErrDoctorNumberAlreadyExists, "Doctor number already exists."},
		{usecase.ErrEmailAlreadyExists, "Email already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthUsecase{
				register: func(req *dto.RegisterRequest) (*dto.DoctorResponse, error) { return nil, tt.err },
			}, validator.NewValidator(), &recordingCookies{})

			body := `{"name":"Dr. A","email":"a@clinic.test","doctor_number":"D-1","password":"correct-horse"}`
			w := newRecorder()
			h.Register(w, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeEnvelope(t, strings.NewReader(w.Body.String()))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator(), &recordingCookies{})

	body := `{"name":"Dr. A","email":"not-an-email","doctor_number":"D-1","password":"short"}`
	w := newRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password must be at least 8 characters")
	assert.Contains(t, w.Body.String(), "email must be a valid email address")
}

func TestAuthHandler_Login(t *testing.T) {
	cookies := &recordingCookies{}
	h := NewAuthHandler(&fakeAuthUsecase{
		login: func(req *dto.LoginRequest) (*dto.LoginResult, error) {
			if req.Password != "correct-horse" {
				return nil, usecase.ErrInvalidCredentials
			}
			return &dto.LoginResult{Doctor: dto.DoctorSummary{ID: 3, Name: "Dr. C"}, SessionToken: "signed"}, nil
		},
	}, validator.NewValidator(), cookies)

	w := newRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"doctor_number":"D-3","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Empty(t, cookies.set)

	w = newRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"doctor_number":"D-3","password":"correct-horse"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signed", cookies.set)
	assert.NotContains(t, w.Body.String(), "signed")
	assert.Contains(t, w.Body.String(), `"doctor":{"id":3,"name":"Dr. C"}`)
}

func TestAuthHandler_LogoutAlwaysSucceeds(t *testing.T) {
	var gotDoctor int64
	cookies := &recordingCookies{}
	h := NewAuthHandler(&fakeAuthUsecase{
		logout: func(doctorID int64, sessionID string) error {
			gotDoctor = doctorID
			return nil
		},
	}, validator.NewValidator(), cookies)

	w := newRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cookies.cleared)
	assert.Zero(t, gotDoctor)

	w = newRecorder()
	h.Logout(w, asDoctor(httptest.NewRequest(http.MethodPost, "/api/logout", nil), 9, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9), gotDoctor)
}

func TestAuthHandler_CheckAuth(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator(), &recordingCookies{})

	w := newRecorder()
	h.CheckAuth(w, httptest.NewRequest(http.MethodGet, "/api/check-auth", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = newRecorder()
	h.CheckAuth(w, asDoctor(httptest.NewRequest(http.MethodGet, "/api/check-auth", nil), 4, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true,"doctor_id":4`)
}
