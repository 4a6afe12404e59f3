package repository

import (
	"context"
	"errors"

	"ehr-backend/internal/domain/entity"
	domainRepo "ehr-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type digestiveVisitRepository struct{}

func NewDigestiveVisitRepository() domainRepo.DigestiveVisitRepository {
	return &digestiveVisitRepository{}
}

func (r *digestiveVisitRepository) FindLatestByPatient(ctx context.Context, db *gorm.DB, patientID int64) (*entity.DigestiveVisit, error) {
	return r.findLatest(db.WithContext(ctx), patientID)
}

func (r *digestiveVisitRepository) FindLatestByPatientForUpdate(ctx context.Context, db *gorm.DB, patientID int64) (*entity.DigestiveVisit, error) {
	return r.findLatest(db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), patientID)
}

func (r *digestiveVisitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.DigestiveVisit) error {
	return db.WithContext(ctx).Create(visit).Error
}

func (r *digestiveVisitRepository) Update(ctx context.Context, db *gorm.DB, visit *entity.DigestiveVisit) error {
	return db.WithContext(ctx).Save(visit).Error
}

func (r *digestiveVisitRepository) findLatest(query *gorm.DB, patientID int64) (*entity.DigestiveVisit, error) {
	var visit entity.DigestiveVisit
	err := query.Where("patient_id = ?", patientID).Order("id DESC").Limit(1).Take(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}
