package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type countingVisitRepo struct {
	repository.VisitRepository
	calls int
}

func (r *countingVisitRepo) FindByID(ctx context.Context, db *gorm.DB, doctorID, id int64) (*entity.Visit, error) {
	r.calls++
	return nil, nil
}

type countingStorage struct {
	saves   int
	removes int
}

func (s *countingStorage) Save(name string, content io.Reader) (int64, error) {
	s.saves++
	return io.Copy(io.Discard, content)
}

func (s *countingStorage) Open(name string) (afero.File, error) {
	return nil, afero.ErrFileNotFound
}

func (s *countingStorage) Remove(name string) error {
	s.removes++
	return nil
}

func TestValidateUploadName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantExt  string
		wantErr  error
	}{
		{name: "", wantErr: ErrNoFileSelected},
		{name: "virus.exe", wantErr: ErrFileTypeNotAllowed},
		{name: "noextension", wantErr: ErrFileTypeNotAllowed},
		{name: "archive.tar.gz", wantErr: ErrFileTypeNotAllowed},
		{name: "日本.pdf", wantErr: ErrInvalidFilename},
		{name: "lab report.PDF", wantName: "lab_report.PDF", wantExt: "pdf"},
		{name: "x-ray.jpeg", wantName: "x-ray.jpeg", wantExt: "jpeg"},
		{name: "notes.docx", wantName: "notes.docx", wantExt: "docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secure, ext, err := ValidateUploadName(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, secure)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestDocumentUsecase_UploadRejectsDisallowedTypeBeforeAnyWrite(t *testing.T) {
	visitRepo := &countingVisitRepo{}
	store := &countingStorage{}
	u := NewDocumentUsecase(nil, newTestLogger(), visitRepo, nil, store, nil)

	_, err := u.Upload(context.Background(), 1, 1, &dto.UploadDocumentRequest{
		FileName: "payload.exe",
		Content:  strings.NewReader("MZ..."),
	})

	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Zero(t, visitRepo.calls)
	assert.Zero(t, store.saves)
	assert.Zero(t, store.removes)
}

func TestDocumentUsecase_UploadUnknownVisit(t *testing.T) {
	visitRepo := &countingVisitRepo{}
	store := &countingStorage{}
	u := NewDocumentUsecase(nil, newTestLogger(), visitRepo, nil, store, nil)

	_, err := u.Upload(context.Background(), 1, 99, &dto.UploadDocumentRequest{
		FileName: "scan.png",
		Content:  strings.NewReader("\x89PNG\r\n\x1a\n"),
	})

	assert.ErrorIs(t, err, ErrVisitNotFound)
	assert.Equal(t, 1, visitRepo.calls)
	assert.Zero(t, store.saves)
}

func TestIsDuplicateKeyError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: entity.ConstraintDoctorNumber}

	assert.True(t, isDuplicateKeyError(pgErr, entity.ConstraintDoctorNumber))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert doctor: %w", pgErr), entity.ConstraintDoctorNumber))
	assert.False(t, isDuplicateKeyError(pgErr, entity.ConstraintDoctorEmail))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: entity.ConstraintDoctorNumber}, entity.ConstraintDoctorNumber))
	assert.False(t, isDuplicateKeyError(fmt.Errorf("boom"), entity.ConstraintDoctorNumber))
}
