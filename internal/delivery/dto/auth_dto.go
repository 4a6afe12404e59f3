package dto

// Request DTOs

type RegisterRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=120"`
	DoctorNumber string `json:"doctor_number" validate:"required,max=50"`
	Password     string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	DoctorNumber string `json:"doctor_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID           int64  `json:"id"`
	DoctorNumber string `json:"doctor_number"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

type DoctorSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LoginResult carries the session token to the handler, which turns it into
// a cookie; only Doctor is rendered.
type LoginResult struct {
	Doctor       DoctorSummary `json:"doctor"`
	SessionToken string        `json:"-"`
}

type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	DoctorID      *int64 `json:"doctor_id,omitempty"`
}

type MeResponse struct {
	DoctorID int64          `json:"doctor_id"`
	Doctor   DoctorResponse `json:"doctor"`
}
