package dto

import "github.com/shopspring/decimal"

type SaveEHRRecordRequest struct {
	FirstName             string  `json:"first_name" validate:"max=50"`
	LastName              string  `json:"last_name" validate:"max=50"`
	BirthDate             *string `json:"birth_date" validate:"omitempty,date"`
	Gender                string  `json:"gender" validate:"max=20"`
	Phone                 string  `json:"phone" validate:"max=20"`
	Email                 string  `json:"email" validate:"omitempty,email,max=120"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergency_contact_name" validate:"max=100"`
	EmergencyContactPhone string  `json:"emergency_contact_phone" validate:"max=20"`

	BloodPressureSystolic  *int                `json:"blood_pressure_systolic" validate:"omitempty,gte=0,lte=400"`
	BloodPressureDiastolic *int                `json:"blood_pressure_diastolic" validate:"omitempty,gte=0,lte=300"`
	Temperature            decimal.NullDecimal `json:"temperature"`
	HeartRate              *int                `json:"heart_rate" validate:"omitempty,gte=0,lte=400"`
	Weight                 decimal.NullDecimal `json:"weight"`
	Height                 decimal.NullDecimal `json:"height"`
	OxygenSaturation       *int                `json:"oxygen_saturation" validate:"omitempty,gte=0,lte=100"`

	PastIllnesses      string `json:"past_illnesses"`
	Surgeries          string `json:"surgeries"`
	FamilyHistory      string `json:"family_history"`
	ChronicConditions  string `json:"chronic_conditions"`
	CurrentMedications string `json:"current_medications"`
	Allergies          string `json:"allergies"`
	HasAllergies       bool   `json:"has_allergies"`
	Immunizations      string `json:"immunizations"`

	LabTests      string  `json:"lab_tests"`
	LabResults    string  `json:"lab_results"`
	Diagnosis     string  `json:"diagnosis"`
	TreatmentPlan string  `json:"treatment_plan"`
	FollowUpDate  *string `json:"follow_up_date" validate:"omitempty,date"`
	Smoker        bool    `json:"smoker"`
	InsuranceType string  `json:"insurance_type" validate:"max=20"`
	Notes         string  `json:"notes"`
}

type EHRRecordResponse struct {
	ID        int64 `json:"id"`
	VisitID   int64 `json:"visit_id"`
	PatientID int64 `json:"patient_id"`

	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	BirthDate             *string `json:"birth_date"`
	Gender                string  `json:"gender"`
	Phone                 string  `json:"phone"`
	Email                 string  `json:"email"`
	Address               string  `json:"address"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`

	BloodPressureSystolic  *int                `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *int                `json:"blood_pressure_diastolic"`
	Temperature            decimal.NullDecimal `json:"temperature"`
	HeartRate              *int                `json:"heart_rate"`
	Weight                 decimal.NullDecimal `json:"weight"`
	Height                 decimal.NullDecimal `json:"height"`
	OxygenSaturation       *int                `json:"oxygen_saturation"`

	PastIllnesses      string `json:"past_illnesses"`
	Surgeries          string `json:"surgeries"`
	FamilyHistory      string `json:"family_history"`
	ChronicConditions  string `json:"chronic_conditions"`
	CurrentMedications string `json:"current_medications"`
	Allergies          string `json:"allergies"`
	HasAllergies       bool   `json:"has_allergies"`
	Immunizations      string `json:"immunizations"`

	LabTests      string  `json:"lab_tests"`
	LabResults    string  `json:"lab_results"`
	Diagnosis     string  `json:"diagnosis"`
	TreatmentPlan string  `json:"treatment_plan"`
	FollowUpDate  *string `json:"follow_up_date"`
	Smoker        bool    `json:"smoker"`
	InsuranceType string  `json:"insurance_type"`
	Notes         string  `json:"notes"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
