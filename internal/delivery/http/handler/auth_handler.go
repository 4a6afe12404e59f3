package handler

import (
	"encoding/json"
	"net/http"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"
	"ehr-backend/pkg/validator"
)

// SessionCookies writes and expires the session cookie.
type SessionCookies interface {
	SetSessionCookie(w http.ResponseWriter, token string)
	ClearSessionCookie(w http.ResponseWriter)
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	cookies     SessionCookies
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookies SessionCookies) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		cookies:     cookies,
	}
}

// Register handles doctor registration
// @Summary Register a new doctor
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNumberAlreadyExists:
			response.BadRequest(w, "Doctor number already exists.")
		case usecase.ErrEmailAlreadyExists:
			response.BadRequest(w, "Email already exists.")
		default:
			response.InternalServerError(w, "Failed to register doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered", doctor)
}

// Login handles doctor login
// @Summary Login with doctor number and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid credentials")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.cookies.SetSessionCookie(w, result.SessionToken)
	response.Success(w, http.StatusOK, "Login successful", result)
}

// Logout always succeeds from the client's point of view; the cookie is
// expired even when the server-side session is already gone.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	doctorID, _ := middleware.GetDoctorIDFromContext(r.Context())
	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), doctorID, sessionID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	h.cookies.ClearSessionCookie(w)
	response.Success(w, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.JSON(w, http.StatusUnauthorized, response.Response{
			Success: false,
			Message: "Not authenticated",
			Data:    dto.CheckAuthResponse{Authenticated: false},
		})
		return
	}

	response.Success(w, http.StatusOK, "Authenticated", dto.CheckAuthResponse{
		Authenticated: true,
		DoctorID:      &doctorID,
	})
}

// Me handles getting the current doctor
// @Summary Get the authenticated doctor
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	me, err := h.authUsecase.GetCurrentDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.Unauthorized(w, "Authentication required")
		default:
			response.InternalServerError(w, "Failed to get doctor info")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", me)
}
