package entity

import "time"

// Patient belongs to exactly one doctor. The insurance number is unique per
// doctor and, together with the birth date, identifies the patient.
type Patient struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int64     `gorm:"not null;index" json:"doctor_id"`
	FirstName       string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName        string    `gorm:"type:varchar(50)" json:"last_name"`
	BirthDate       time.Time `gorm:"type:date" json:"birth_date"`
	InsuranceNumber string    `gorm:"type:varchar(50);not null" json:"insurance_number"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Visits []Visit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

const ConstraintPatientInsurance = "uq_patients_doctor_insurance"
