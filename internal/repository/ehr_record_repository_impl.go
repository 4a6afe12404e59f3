package repository

import (
	"context"
	"errors"

	"ehr-backend/internal/domain/entity"
	domainRepo "ehr-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ehrRecordRepository struct{}

func NewEHRRecordRepository() domainRepo.EHRRecordRepository {
	return &ehrRecordRepository{}
}

func (r *ehrRecordRepository) FindByVisit(ctx context.Context, db *gorm.DB, visitID int64) (*entity.EHRRecord, error) {
	var record entity.EHRRecord
	err := db.WithContext(ctx).Where("visit_id = ?", visitID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Upsert inserts the record or overwrites every column of the existing
// record of the same visit.
func (r *ehrRecordRepository) Upsert(ctx context.Context, db *gorm.DB, record *entity.EHRRecord) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visit_id"}},
		UpdateAll: true,
	}).Create(record).Error
}
