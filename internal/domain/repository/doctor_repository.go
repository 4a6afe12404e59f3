package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(ctx context.Context, db *gorm.DB, doctor *entity.Doctor) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByDoctorNumber(ctx context.Context, db *gorm.DB, doctorNumber string) (*entity.Doctor, error)
}
