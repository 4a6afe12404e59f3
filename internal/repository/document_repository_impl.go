package repository

import (
	"context"
	"errors"

	"ehr-backend/internal/domain/entity"
	domainRepo "ehr-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(ctx context.Context, db *gorm.DB, document *entity.Document) error {
	return db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Document, error) {
	return r.findOwned(db.WithContext(ctx).Where("documents.id = ?", id), doctorID)
}

func (r *documentRepository) FindByFilePath(ctx context.Context, db *gorm.DB, doctorID int64, filePath string) (*entity.Document, error) {
	return r.findOwned(db.WithContext(ctx).Where("documents.file_path = ?", filePath), doctorID)
}

func (r *documentRepository) FindByVisit(ctx context.Context, db *gorm.DB, visitID int64) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.WithContext(ctx).Where("visit_id = ?", visitID).Order("uploaded_at ASC, id ASC").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) FindFilePathsByPatient(ctx context.Context, db *gorm.DB, patientID int64) ([]string, error) {
	var paths []string
	err := db.WithContext(ctx).Model(&entity.Document{}).Where("patient_id = ?", patientID).Pluck("file_path", &paths).Error
	return paths, err
}

func (r *documentRepository) FindFilePathsByVisit(ctx context.Context, db *gorm.DB, visitID int64) ([]string, error) {
	var paths []string
	err := db.WithContext(ctx).Model(&entity.Document{}).Where("visit_id = ?", visitID).Pluck("file_path", &paths).Error
	return paths, err
}

func (r *documentRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Document{})
	return result.RowsAffected, result.Error
}

func (r *documentRepository) findOwned(query *gorm.DB, doctorID int64) (*entity.Document, error) {
	var document entity.Document
	err := query.
		Joins("JOIN patients p ON p.id = documents.patient_id").
		Where("p.doctor_id = ?", doctorID).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}
