package usecase

import (
	"context"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	// ListForDoctor expects a normalized query.
	ListForDoctor(ctx context.Context, doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListForDoctor(ctx context.Context, doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error) {
	logs, total, err := u.auditLogRepo.FindByDoctor(ctx, u.db, doctorID, query.Limit, query.Offset())
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}

	return converter.AuditLogsToResponses(logs), total, nil
}
