package usecase

import (
	"context"
	"errors"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEHRRecordNotFound = errors.New("ehr record not found")
)

type EHRRecordUsecase interface {
	Get(ctx context.Context, doctorID, visitID int64) (*dto.EHRRecordResponse, error)
	Save(ctx context.Context, doctorID, visitID int64, req *dto.SaveEHRRecordRequest) (*dto.EHRRecordResponse, error)
}

type ehrRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	visitRepo    repository.VisitRepository
	ehrRepo      repository.EHRRecordRepository
	auditService service.AuditService
}

func NewEHRRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	ehrRepo repository.EHRRecordRepository,
	auditService service.AuditService,
) EHRRecordUsecase {
	return &ehrRecordUsecase{
		db:           db,
		log:          log,
		visitRepo:    visitRepo,
		ehrRepo:      ehrRepo,
		auditService: auditService,
	}
}

func (u *ehrRecordUsecase) Get(ctx context.Context, doctorID, visitID int64) (*dto.EHRRecordResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, doctorID, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	record, err := u.ehrRepo.FindByVisit(ctx, u.db, visit.ID)
	if err != nil {
		u.log.Warnf("Failed to find ehr record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrEHRRecordNotFound
	}

	return converter.EHRRecordToResponse(record), nil
}

func (u *ehrRecordUsecase) Save(ctx context.Context, doctorID, visitID int64, req *dto.SaveEHRRecordRequest) (*dto.EHRRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, doctorID, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	record := &entity.EHRRecord{
		VisitID:   visit.ID,
		PatientID: visit.PatientID,
	}
	if err := converter.ApplyEHRRecordRequest(record, req); err != nil {
		return nil, ErrInvalidDateFormat
	}

	if err := u.ehrRepo.Upsert(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to save ehr record: %+v", err)
		return nil, err
	}

	// Re-read so the response carries the stored id and timestamps.
	saved, err := u.ehrRepo.FindByVisit(ctx, tx, visit.ID)
	if err != nil {
		u.log.Warnf("Failed to find ehr record: %+v", err)
		return nil, err
	}
	if saved == nil {
		return nil, ErrEHRRecordNotFound
	}

	resp := converter.EHRRecordToResponse(saved)
	u.auditService.LogUpdate(ctx, tx, doctorID, entity.AuditActionEHRRecordSave, "ehr_record", saved.ID, nil, resp)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}
