package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EHRRecordRepository interface {
	FindByVisit(ctx context.Context, db *gorm.DB, visitID int64) (*entity.EHRRecord, error)
	Upsert(ctx context.Context, db *gorm.DB, record *entity.EHRRecord) error
}
