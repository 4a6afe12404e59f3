package dto

// Request DTOs

type CreateVisitRequest struct {
	VisitDate      string `json:"visit_date" validate:"omitempty,date"`
	VisitType      string `json:"visit_type" validate:"omitempty,max=50"`
	ChiefComplaint string `json:"chief_complaint"`
	Notes          string `json:"notes"`
}

// UpdateVisitRequest only touches the fields present in the body.
type UpdateVisitRequest struct {
	VisitDate      *string `json:"visit_date" validate:"omitempty,date"`
	VisitType      *string `json:"visit_type" validate:"omitempty,min=1,max=50"`
	ChiefComplaint *string `json:"chief_complaint"`
	Notes          *string `json:"notes"`
}

// Response DTOs

type VisitResponse struct {
	ID             int64  `json:"id"`
	PatientID      int64  `json:"patient_id"`
	VisitDate      string `json:"visit_date"`
	VisitType      string `json:"visit_type"`
	ChiefComplaint string `json:"chief_complaint"`
	Notes          string `json:"notes"`
	DocumentCount  *int64 `json:"document_count,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type VisitDetailResponse struct {
	Visit     VisitResponse      `json:"visit"`
	Documents []DocumentResponse `json:"documents"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
