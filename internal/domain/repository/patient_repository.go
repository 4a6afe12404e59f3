package repository

import (
	"context"
	"time"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// PatientRepository lookups all take the owning doctor id; a patient of
// another doctor is reported as not found.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Patient, error)
	FindByInsuranceNumber(ctx context.Context, db *gorm.DB, doctorID int64, insuranceNumber string) (*entity.Patient, error)
	FindByIdentifiers(ctx context.Context, db *gorm.DB, doctorID int64, insuranceNumber string, birthDate time.Time) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, doctorID int64, limit, offset int) ([]entity.Patient, int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, doctorID, id int64) (int64, error)
}
