package repository

import (
	"context"
	"errors"

	"ehr-backend/internal/domain/entity"
	domainRepo "ehr-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Omit("Patient", "Documents").Create(visit).Error
}

// FindByID resolves the visit through its patient so that visits of another
// doctor's patients are never returned.
func (r *visitRepository) FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).
		Joins("JOIN patients p ON p.id = visits.patient_id").
		Where("visits.id = ? AND p.doctor_id = ?", id, doctorID).
		First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindSummariesByPatient(ctx context.Context, db *gorm.DB, patientID int64, limit int) ([]entity.VisitSummary, error) {
	var summaries []entity.VisitSummary
	query := db.WithContext(ctx).
		Table("visits v").
		Select("v.*, COUNT(d.id) AS document_count").
		Joins("LEFT JOIN documents d ON d.visit_id = v.id").
		Where("v.patient_id = ?", patientID).
		Group("v.id").
		Order("v.visit_date DESC, v.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *visitRepository) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Omit("Patient", "Documents").Save(visit).Error
}

func (r *visitRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Visit{})
	return result.RowsAffected, result.Error
}
