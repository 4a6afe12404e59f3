package entity

import "time"

// Document is the metadata of an uploaded file. FilePath is the stored name
// relative to the upload directory.
type Document struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VisitID     int64     `gorm:"not null;index" json:"visit_id"`
	PatientID   int64     `gorm:"not null;index" json:"patient_id"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FilePath    string    `gorm:"type:varchar(500);uniqueIndex;not null" json:"file_path"`
	FileType    string    `gorm:"type:varchar(50)" json:"file_type"`
	MimeType    string    `gorm:"type:varchar(255)" json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	Description string    `gorm:"type:text" json:"description"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string {
	return "documents"
}
