package usecase

import (
	"context"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DigestiveUsecase interface {
	// Get returns the patient's latest digestive record, or the default
	// findings when none has been saved.
	Get(ctx context.Context, doctorID, patientID int64) (*dto.DigestiveVisitResponse, error)
	Save(ctx context.Context, doctorID, patientID int64, req *dto.SaveDigestiveRequest) (*dto.DigestiveVisitResponse, error)
}

type digestiveUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	patientRepo   repository.PatientRepository
	digestiveRepo repository.DigestiveVisitRepository
	auditService  service.AuditService
}

func NewDigestiveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	digestiveRepo repository.DigestiveVisitRepository,
	auditService service.AuditService,
) DigestiveUsecase {
	return &digestiveUsecase{
		db:            db,
		log:           log,
		patientRepo:   patientRepo,
		digestiveRepo: digestiveRepo,
		auditService:  auditService,
	}
}

func (u *digestiveUsecase) Get(ctx context.Context, doctorID, patientID int64) (*dto.DigestiveVisitResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record, err := u.digestiveRepo.FindLatestByPatient(ctx, u.db, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find digestive visit: %+v", err)
		return nil, err
	}
	if record == nil {
		record = entity.NewDefaultDigestiveVisit(patient.ID, today())
	}

	return converter.DigestiveVisitToResponse(record), nil
}

// Save updates the latest record under a row lock, or inserts the first one.
func (u *digestiveUsecase) Save(ctx context.Context, doctorID, patientID int64, req *dto.SaveDigestiveRequest) (*dto.DigestiveVisitResponse, error) {
	visitDate := today()
	if req.VisitDate != "" {
		parsed, err := converter.ParseDate(req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		visitDate = parsed
	}

	insuranceType := req.InsuranceType
	if insuranceType == "" {
		insuranceType = entity.InsuranceTypePublic
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, doctorID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record, err := u.digestiveRepo.FindLatestByPatientForUpdate(ctx, tx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to lock digestive visit: %+v", err)
		return nil, err
	}

	var oldValue *dto.DigestiveVisitResponse
	if record == nil {
		record = &entity.DigestiveVisit{PatientID: patient.ID}
	} else {
		oldValue = converter.DigestiveVisitToResponse(record)
	}

	record.VisitDate = visitDate
	record.DigestiveInspection = req.DigestiveInspection
	record.DigestiveAuscultation = req.DigestiveAuscultation
	record.DigestivePalpation = req.DigestivePalpation
	record.Liver = req.Liver
	record.Rectal = req.Rectal
	record.Smoker = bool(req.Smoker)
	record.InsuranceType = insuranceType
	record.Notes = req.Notes
	record.ImagePath = req.ImagePath

	if oldValue == nil {
		err = u.digestiveRepo.Create(ctx, tx, record)
	} else {
		err = u.digestiveRepo.Update(ctx, tx, record)
	}
	if err != nil {
		u.log.Warnf("Failed to save digestive visit: %+v", err)
		return nil, err
	}

	newValue := converter.DigestiveVisitToResponse(record)
	u.auditService.LogUpdate(ctx, tx, doctorID, entity.AuditActionDigestiveSave, "digestive_visit", record.ID, oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}
