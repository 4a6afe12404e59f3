package service

import (
	"context"

	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	Log(ctx context.Context, tx *gorm.DB, doctorID *int64, action string, metadata entity.JSON) error
	LogCreate(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

const auditSavePoint = "audit_log"

// Log writes a free-form entry, used for session events. Inside a
// transaction the insert runs under a savepoint so a failed audit write does
// not abort the caller's transaction.
func (s *auditService) Log(ctx context.Context, tx *gorm.DB, doctorID *int64, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		DoctorID: doctorID,
		Action:   action,
		Metadata: metadata,
	}

	inTx := isTransaction(tx)
	if inTx {
		if err := tx.SavePoint(auditSavePoint).Error; err != nil {
			s.log.Warnf("Failed to create audit savepoint: %+v", err)
			return err
		}
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		if inTx {
			tx.RollbackTo(auditSavePoint)
		}
		return err
	}

	return nil
}

func isTransaction(db *gorm.DB) bool {
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, newValue interface{}) error {
	return s.Log(ctx, tx, &doctorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.Log(ctx, tx, &doctorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, doctorID int64, action string, entityName string, entityID int64, oldValue interface{}) error {
	return s.Log(ctx, tx, &doctorID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}
