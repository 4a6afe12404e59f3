package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, db *gorm.DB, document *entity.Document) error
	FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Document, error)
	FindByFilePath(ctx context.Context, db *gorm.DB, doctorID int64, filePath string) (*entity.Document, error)
	FindByVisit(ctx context.Context, db *gorm.DB, visitID int64) ([]entity.Document, error)
	FindFilePathsByPatient(ctx context.Context, db *gorm.DB, patientID int64) ([]string, error)
	FindFilePathsByVisit(ctx context.Context, db *gorm.DB, visitID int64) ([]string, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
