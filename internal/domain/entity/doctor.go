package entity

import "time"

// Doctor is the only kind of account in the system. Every patient row
// hangs off exactly one doctor.
type Doctor struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"doctor_number"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Constraint names from the schema migrations, used to tell unique
// violations apart.
const (
	ConstraintDoctorNumber = "uq_doctors_doctor_number"
	ConstraintDoctorEmail  = "uq_doctors_email"
)
