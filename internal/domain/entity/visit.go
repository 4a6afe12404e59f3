package entity

import "time"

const VisitTypeGeneral = "general"

type Visit struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int64     `gorm:"not null;index" json:"patient_id"`
	VisitDate      time.Time `gorm:"type:date;not null" json:"visit_date"`
	VisitType      string    `gorm:"type:varchar(50);default:general" json:"visit_type"`
	ChiefComplaint string    `gorm:"type:text" json:"chief_complaint"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"-"`
	Documents []Document `gorm:"foreignKey:VisitID" json:"documents,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// VisitSummary is a visit row joined with the number of documents attached
// to it.
type VisitSummary struct {
	Visit
	DocumentCount int64 `gorm:"column:document_count" json:"document_count"`
}
