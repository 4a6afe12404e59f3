package repository

import (
	"context"
	"errors"
	"time"

	"ehr-backend/internal/domain/entity"
	domainRepo "ehr-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Doctor", "Visits").Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Patient, error) {
	return r.findOne(db.WithContext(ctx).Where("id = ? AND doctor_id = ?", id, doctorID))
}

func (r *patientRepository) FindByInsuranceNumber(ctx context.Context, db *gorm.DB, doctorID int64, insuranceNumber string) (*entity.Patient, error) {
	return r.findOne(db.WithContext(ctx).
		Where("insurance_number = ? AND doctor_id = ?", insuranceNumber, doctorID))
}

func (r *patientRepository) FindByIdentifiers(ctx context.Context, db *gorm.DB, doctorID int64, insuranceNumber string, birthDate time.Time) (*entity.Patient, error) {
	return r.findOne(db.WithContext(ctx).
		Where("insurance_number = ? AND birth_date = ? AND doctor_id = ?", insuranceNumber, birthDate.Format("2006-01-02"), doctorID))
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB, doctorID int64, limit, offset int) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	query := db.WithContext(ctx).Model(&entity.Patient{}).Where("doctor_id = ?", doctorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Omit("Doctor", "Visits").Save(patient).Error
}

// Delete relies on ON DELETE CASCADE for visits, documents, digestive and
// EHR records.
func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, doctorID, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) findOne(query *gorm.DB) (*entity.Patient, error) {
	var patient entity.Patient
	err := query.First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
