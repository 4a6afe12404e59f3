package repository

import (
	"context"

	"ehr-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByDoctor(ctx context.Context, db *gorm.DB, doctorID int64, limit, offset int) ([]entity.AuditLog, int64, error)
}
