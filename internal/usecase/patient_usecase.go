package usecase

import (
	"context"
	"errors"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/internal/infrastructure/storage"
	"ehr-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound         = errors.New("patient not found")
	ErrInsuranceNumberRequired = errors.New("insurance number required")
	ErrPatientAlreadyExists    = errors.New("patient with this insurance number already exists")
	ErrInvalidDateFormat       = errors.New("invalid date format, use YYYY-MM-DD")
)

// recentVisitLimit is how many visits a successful verification returns.
const recentVisitLimit = 10

const verifyMismatchMessage = "Patient not found with matching identifiers"

type PatientUsecase interface {
	Search(ctx context.Context, doctorID int64, insuranceNumber string) (*dto.PatientSearchResponse, error)
	Verify(ctx context.Context, doctorID int64, req *dto.VerifyPatientRequest) (*dto.PatientVerifyResponse, error)
	Create(ctx context.Context, doctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, doctorID int64, query dto.ListQuery) (*dto.PatientListResponse, error)
	Get(ctx context.Context, doctorID, id int64) (*dto.PatientDetailResponse, error)
	Update(ctx context.Context, doctorID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, doctorID, id int64) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	visitRepo    repository.VisitRepository
	documentRepo repository.DocumentRepository
	storage      storage.FileStorage
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	documentRepo repository.DocumentRepository,
	fileStorage storage.FileStorage,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		visitRepo:    visitRepo,
		documentRepo: documentRepo,
		storage:      fileStorage,
		auditService: auditService,
	}
}

func (u *patientUsecase) Search(ctx context.Context, doctorID int64, insuranceNumber string) (*dto.PatientSearchResponse, error) {
	if insuranceNumber == "" {
		return nil, ErrInsuranceNumberRequired
	}

	patient, err := u.patientRepo.FindByInsuranceNumber(ctx, u.db, doctorID, insuranceNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by insurance number: %+v", err)
		return nil, err
	}
	if patient == nil {
		return &dto.PatientSearchResponse{
			Found:           false,
			InsuranceNumber: insuranceNumber,
		}, nil
	}

	return &dto.PatientSearchResponse{
		Found:   true,
		Patient: converter.PatientToResponse(patient),
	}, nil
}

// Verify matches the patient on both identifiers. A mismatch is a normal
// result, not an error.
func (u *patientUsecase) Verify(ctx context.Context, doctorID int64, req *dto.VerifyPatientRequest) (*dto.PatientVerifyResponse, error) {
	birthDate, err := converter.ParseDate(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByIdentifiers(ctx, u.db, doctorID, req.InsuranceNumber, birthDate)
	if err != nil {
		u.log.Warnf("Failed to verify patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return &dto.PatientVerifyResponse{
			Verified: false,
			Error:    verifyMismatchMessage,
		}, nil
	}

	visits, err := u.visitRepo.FindSummariesByPatient(ctx, u.db, patient.ID, recentVisitLimit)
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	return &dto.PatientVerifyResponse{
		Verified: true,
		Patient:  converter.PatientToResponse(patient),
		Visits:   converter.VisitSummariesToResponses(visits),
	}, nil
}

func (u *patientUsecase) Create(ctx context.Context, doctorID int64, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := converter.ParseDate(req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		DoctorID:        doctorID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		BirthDate:       birthDate,
		InsuranceNumber: req.InsuranceNumber,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, entity.ConstraintPatientInsurance) {
			return nil, ErrPatientAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	resp := converter.PatientToResponse(patient)
	u.auditService.LogCreate(ctx, tx, doctorID, entity.AuditActionPatientCreate, "patient", patient.ID, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *patientUsecase) List(ctx context.Context, doctorID int64, query dto.ListQuery) (*dto.PatientListResponse, error) {
	patients, total, err := u.patientRepo.FindAll(ctx, u.db, doctorID, query.Limit, query.Offset())
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, doctorID, id int64) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	visits, err := u.visitRepo.FindSummariesByPatient(ctx, u.db, patient.ID, 0)
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		Patient: *converter.PatientToResponse(patient),
		Visits:  converter.VisitSummariesToResponses(visits),
	}, nil
}

func (u *patientUsecase) Update(ctx context.Context, doctorID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.BirthDate != "" {
		birthDate, err := converter.ParseDate(req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.BirthDate = birthDate
	}
	if req.InsuranceNumber != "" {
		patient.InsuranceNumber = req.InsuranceNumber
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, entity.ConstraintPatientInsurance) {
			return nil, ErrPatientAlreadyExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	newValue := converter.PatientToResponse(patient)
	u.auditService.LogUpdate(ctx, tx, doctorID, entity.AuditActionPatientUpdate, "patient", patient.ID, oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// Delete removes the patient and, through the schema cascades, everything
// recorded for them. Stored files go after the commit.
func (u *patientUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	filePaths, err := u.documentRepo.FindFilePathsByPatient(ctx, tx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient documents: %+v", err)
		return err
	}

	affected, err := u.patientRepo.Delete(ctx, tx, doctorID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	u.auditService.LogDelete(ctx, tx, doctorID, entity.AuditActionPatientDelete, "patient", patient.ID, converter.PatientToResponse(patient))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	removeStoredFiles(u.log, u.storage, filePaths)
	return nil
}

// removeStoredFiles is best effort: the rows are already gone, so a file
// that cannot be removed is only logged.
func removeStoredFiles(log *logrus.Logger, fileStorage storage.FileStorage, names []string) {
	for _, name := range names {
		if err := fileStorage.Remove(name); err != nil {
			log.WithField("file", name).Warnf("Failed to remove stored file: %+v", err)
		}
	}
}
