package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrVisitNotFound = errors.New("visit not found")
)

type VisitUsecase interface {
	Create(ctx context.Context, doctorID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	ListByPatient(ctx context.Context, doctorID, patientID int64) (*dto.VisitListResponse, error)
	Get(ctx context.Context, doctorID, id int64) (*dto.VisitDetailResponse, error)
	Update(ctx context.Context, doctorID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	Delete(ctx context.Context, doctorID, id int64) error
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	visitRepo    repository.VisitRepository
	documentRepo repository.DocumentRepository
	storage      storage.FileStorage
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	documentRepo repository.DocumentRepository,
	fileStorage storage.FileStorage,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		visitRepo:    visitRepo,
		documentRepo: documentRepo,
		storage:      fileStorage,
		auditService: auditService,
	}
}

func (u *visitUsecase) Create(ctx context.Context, doctorID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	visitDate := today()
	if req.VisitDate != "" {
		parsed, err := converter.ParseDate(req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		visitDate = parsed
	}

	visitType := req.VisitType
	if visitType == "" {
		visitType = entity.VisitTypeGeneral
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

	visit := &entity.Visit{
		PatientID:      patient.ID,
		VisitDate:      visitDate,
		VisitType:      visitType,
		ChiefComplaint: req.ChiefComplaint,
		Notes:          req.Notes,
	}

	if err := u.visitRepo.Create(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	resp := converter.VisitToResponse(visit)
	u.auditService.LogCreate(ctx, tx, doctorID, entity.AuditActionVisitCreate, "visit", visit.ID, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *visitUsecase) ListByPatient(ctx context.Context, doctorID, patientID int64) (*dto.VisitListResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, doctorID, patientID)
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

	responses := converter.VisitSummariesToResponses(visits)
	return &dto.VisitListResponse{
		Visits: responses,
		Total:  len(responses),
	}, nil
}

func (u *visitUsecase) Get(ctx context.Context, doctorID, id int64) (*dto.VisitDetailResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	documents, err := u.documentRepo.FindByVisit(ctx, u.db, visit.ID)
	if err != nil {
		u.log.Warnf("Failed to find documents: %+v", err)
		return nil, err
	}

	return &dto.VisitDetailResponse{
		Visit:     *converter.VisitToResponse(visit),
		Documents: converter.DocumentsToResponses(documents),
	}, nil
}

func (u *visitUsecase) Update(ctx context.Context, doctorID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	oldValue := converter.VisitToResponse(visit)

	if req.VisitDate != nil && *req.VisitDate != "" {
		visitDate, err := converter.ParseDate(*req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		visit.VisitDate = visitDate
	}
	if req.VisitType != nil && *req.VisitType != "" {
		visit.VisitType = *req.VisitType
	}
	if req.ChiefComplaint != nil {
		visit.ChiefComplaint = *req.ChiefComplaint
	}
	if req.Notes != nil {
		visit.Notes = *req.Notes
	}

	if err := u.visitRepo.Update(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	newValue := converter.VisitToResponse(visit)
	u.auditService.LogUpdate(ctx, tx, doctorID, entity.AuditActionVisitUpdate, "visit", visit.ID, oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *visitUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return err
	}
	if visit == nil {
		return ErrVisitNotFound
	}

	filePaths, err := u.documentRepo.FindFilePathsByVisit(ctx, tx, visit.ID)
	if err != nil {
		u.log.Warnf("Failed to find visit documents: %+v", err)
		return err
	}

	if _, err := u.visitRepo.Delete(ctx, tx, visit.ID); err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, doctorID, entity.AuditActionVisitDelete, "visit", visit.ID, converter.VisitToResponse(visit))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	removeStoredFiles(u.log, u.storage, filePaths)
	return nil
}

// today is the current local calendar date, stored as a UTC midnight.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
