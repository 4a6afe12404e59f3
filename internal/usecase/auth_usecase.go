package usecase

import (
	"context"
	"errors"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/internal/service"
	"ehr-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNumberAlreadyExists = errors.New("doctor number already exists")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrInvalidCredentials        = errors.New("invalid doctor number or password")
	ErrDoctorNotFound            = errors.New("doctor not found")
)

// pgUniqueViolation is the SQLSTATE of unique_violation.
const pgUniqueViolation = "23505"

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.DoctorResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error)
	Logout(ctx context.Context, doctorID int64, sessionID string) error
	GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.MeResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	sessionRepo  repository.SessionRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		sessionRepo:  sessionRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.DoctorResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		DoctorNumber: req.DoctorNumber,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
		if isDuplicateKeyError(err, entity.ConstraintDoctorNumber) {
			return nil, ErrDoctorNumberAlreadyExists
		}
		if isDuplicateKeyError(err, entity.ConstraintDoctorEmail) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, tx, &doctor.ID, entity.AuditActionDoctorRegister, entity.JSON{
		"doctor_number": doctor.DoctorNumber,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResult, error) {
	// Read-only lookup, no transaction needed
	doctor, err := u.doctorRepo.FindByDoctorNumber(ctx, u.db, req.DoctorNumber)
	if err != nil {
		u.log.Warnf("Failed to find doctor by number: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, err := u.jwtService.GenerateSessionToken(doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Create(ctx, doctor.ID, sessionID, u.jwtService.GetSessionTTL()); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}

	u.auditService.Log(ctx, u.db.WithContext(ctx), &doctor.ID, entity.AuditActionDoctorLogin, nil)

	return &dto.LoginResult{
		Doctor: dto.DoctorSummary{
			ID:   doctor.ID,
			Name: doctor.Name,
		},
		SessionToken: token,
	}, nil
}

// Logout revokes the server-side session. Logging out without a session is
// not an error.
func (u *authUsecase) Logout(ctx context.Context, doctorID int64, sessionID string) error {
	if doctorID == 0 || sessionID == "" {
		return nil
	}

	if err := u.sessionRepo.Delete(ctx, doctorID, sessionID); err != nil {
		u.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}

	u.auditService.Log(ctx, u.db.WithContext(ctx), &doctorID, entity.AuditActionDoctorLogout, nil)
	return nil
}

func (u *authUsecase) GetCurrentDoctor(ctx context.Context, doctorID int64) (*dto.MeResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by ID: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return &dto.MeResponse{
		DoctorID: doctor.ID,
		Doctor:   *converter.DoctorToResponse(doctor),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation on the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintName
	}
	return false
}
