package entity

import "time"

// DigestiveVisit holds the digestive examination form. Only the latest row
// per patient is read or written.
type DigestiveVisit struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID             int64     `gorm:"not null;index" json:"patient_id"`
	VisitDate             time.Time `gorm:"type:date" json:"visit_date"`
	DigestiveInspection   string    `gorm:"type:varchar(255)" json:"digestive_inspection"`
	DigestiveAuscultation string    `gorm:"type:varchar(255)" json:"digestive_auscultation"`
	DigestivePalpation    string    `gorm:"type:varchar(255)" json:"digestive_palpation"`
	Liver                 string    `gorm:"type:varchar(255)" json:"liver"`
	Rectal                string    `gorm:"type:varchar(255)" json:"rectal"`
	Smoker                bool      `gorm:"not null;default:false" json:"smoker"`
	InsuranceType         string    `gorm:"type:varchar(20)" json:"insurance_type"`
	Notes                 string    `gorm:"type:text" json:"notes"`
	ImagePath             string    `gorm:"type:varchar(255)" json:"image_path"`
}

func (DigestiveVisit) TableName() string {
	return "digestive_visit"
}

// NewDefaultDigestiveVisit returns the form prefilled with the usual normal
// findings, used when a patient has no saved record yet.
func NewDefaultDigestiveVisit(patientID int64, today time.Time) *DigestiveVisit {
	return &DigestiveVisit{
		PatientID:             patientID,
		VisitDate:             today,
		DigestiveInspection:   "Normal",
		DigestiveAuscultation: "Normal abdomen noises",
		DigestivePalpation:    "Little pain on the right lower area",
		Liver:                 "No hepatomegaly.",
		InsuranceType:         InsuranceTypePublic,
	}
}

const (
	InsuranceTypePublic  = "public"
	InsuranceTypePrivate = "private"
)
