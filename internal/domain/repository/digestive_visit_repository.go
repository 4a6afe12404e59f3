package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DigestiveVisitRepository interface {
	FindLatestByPatient(ctx context.Context, db *gorm.DB, patientID int64) (*entity.DigestiveVisit, error)
	// FindLatestByPatientForUpdate locks the returned row until the
	// surrounding transaction ends.
	FindLatestByPatientForUpdate(ctx context.Context, db *gorm.DB, patientID int64) (*entity.DigestiveVisit, error)
	Create(ctx context.Context, db *gorm.DB, visit *entity.DigestiveVisit) error
	Update(ctx context.Context, db *gorm.DB, visit *entity.DigestiveVisit) error
}
