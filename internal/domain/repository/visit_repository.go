package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Visit, error)
	// FindSummariesByPatient returns visits newest first; limit <= 0 means all.
	FindSummariesByPatient(ctx context.Context, db *gorm.DB, patientID int64, limit int) ([]entity.VisitSummary, error)
	Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
