package dto

// Request DTOs

type SearchPatientQuery struct {
	InsuranceNumber string `schema:"insurance_number"`
}

type VerifyPatientRequest struct {
	InsuranceNumber string `json:"insurance_number" validate:"required"`
	BirthDate       string `json:"birth_date" validate:"required,date"`
}

type CreatePatientRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=50"`
	LastName        string `json:"last_name" validate:"required,max=50"`
	BirthDate       string `json:"birth_date" validate:"required,date"`
	InsuranceNumber string `json:"insurance_number" validate:"required,max=50"`
}

// UpdatePatientRequest leaves fields that are sent empty unchanged.
type UpdatePatientRequest struct {
	FirstName       string `json:"first_name" validate:"omitempty,max=50"`
	LastName        string `json:"last_name" validate:"omitempty,max=50"`
	BirthDate       string `json:"birth_date" validate:"omitempty,date"`
	InsuranceNumber string `json:"insurance_number" validate:"omitempty,max=50"`
}

// Response DTOs

type PatientResponse struct {
	ID              int64  `json:"id"`
	DoctorID        int64  `json:"doctor_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	BirthDate       string `json:"birth_date"`
	InsuranceNumber string `json:"insurance_number"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type PatientSearchResponse struct {
	Found           bool             `json:"found"`
	Patient         *PatientResponse `json:"patient,omitempty"`
	InsuranceNumber string           `json:"insurance_number,omitempty"`
}

type PatientVerifyResponse struct {
	Verified bool             `json:"verified"`
	Patient  *PatientResponse `json:"patient,omitempty"`
	Visits   []VisitResponse  `json:"visits"`
	Error    string           `json:"error,omitempty"`
}

type PatientDetailResponse struct {
	Patient PatientResponse `json:"patient"`
	Visits  []VisitResponse `json:"visits"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
