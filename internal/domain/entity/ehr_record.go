package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EHRRecord is the structured record of a single visit: demographics as
// recorded at the visit, vitals, history and the plan.
type EHRRecord struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID   int64 `gorm:"not null;uniqueIndex" json:"visit_id"`
	PatientID int64 `gorm:"not null;index" json:"patient_id"`

	FirstName             string     `gorm:"type:varchar(50)" json:"first_name"`
	LastName              string     `gorm:"type:varchar(50)" json:"last_name"`
	BirthDate             *time.Time `gorm:"type:date" json:"birth_date"`
	Gender                string     `gorm:"type:varchar(20)" json:"gender"`
	Phone                 string     `gorm:"type:varchar(20)" json:"phone"`
	Email                 string     `gorm:"type:varchar(120)" json:"email"`
	Address               string     `gorm:"type:text" json:"address"`
	EmergencyContactName  string     `gorm:"type:varchar(100)" json:"emergency_contact_name"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone"`

	BloodPressureSystolic  *int                `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *int                `json:"blood_pressure_diastolic"`
	Temperature            decimal.NullDecimal `gorm:"type:decimal(4,2)" json:"temperature"`
	HeartRate              *int                `json:"heart_rate"`
	Weight                 decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"weight"`
	Height                 decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"height"`
	OxygenSaturation       *int                `json:"oxygen_saturation"`

	PastIllnesses      string `gorm:"type:text" json:"past_illnesses"`
	Surgeries          string `gorm:"type:text" json:"surgeries"`
	FamilyHistory      string `gorm:"type:text" json:"family_history"`
	ChronicConditions  string `gorm:"type:text" json:"chronic_conditions"`
	CurrentMedications string `gorm:"type:text" json:"current_medications"`
	Allergies          string `gorm:"type:text" json:"allergies"`
	HasAllergies       bool   `gorm:"not null;default:false" json:"has_allergies"`
	Immunizations      string `gorm:"type:text" json:"immunizations"`

	LabTests      string     `gorm:"type:text" json:"lab_tests"`
	LabResults    string     `gorm:"type:text" json:"lab_results"`
	Diagnosis     string     `gorm:"type:text" json:"diagnosis"`
	TreatmentPlan string     `gorm:"type:text" json:"treatment_plan"`
	FollowUpDate  *time.Time `gorm:"type:date" json:"follow_up_date"`
	Smoker        bool       `gorm:"not null;default:false" json:"smoker"`
	InsuranceType string     `gorm:"type:varchar(20)" json:"insurance_type"`
	Notes         string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EHRRecord) TableName() string {
	return "ehr_data"
}
