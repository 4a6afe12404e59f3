package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"ehr-backend/internal/converter"
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/domain/repository"
	"ehr-backend/internal/infrastructure/storage"
	"ehr-backend/internal/service"
	"ehr-backend/pkg/filename"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

var (
	ErrNoFileProvided     = errors.New("no file provided")
	ErrNoFileSelected     = errors.New("no file selected")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrFailedToSaveFile   = errors.New("failed to save file")
	ErrDocumentSaveFailed = errors.New("failed to save document")
	ErrDocumentNotFound   = errors.New("document not found")
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// sniffLen is how much of an upload is read to detect its content type.
const sniffLen = 3072

// ValidateUploadName checks a client file name in upload order and returns
// the sanitized name with its extension.
func ValidateUploadName(name string) (string, string, error) {
	if name == "" {
		return "", "", ErrNoFileSelected
	}
	if !allowedExtensions[filename.Ext(name)] {
		return "", "", ErrFileTypeNotAllowed
	}

	secure := filename.Secure(name)
	ext := filename.Ext(secure)
	if secure == "" || ext == "" {
		return "", "", ErrInvalidFilename
	}
	return secure, ext, nil
}

type DocumentUsecase interface {
	Upload(ctx context.Context, doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error)
	ListByVisit(ctx context.Context, doctorID, visitID int64) (*dto.DocumentListResponse, error)
	Delete(ctx context.Context, doctorID, id int64) error
	// OpenStoredFile opens the stored file behind one of the doctor's
	// documents. The caller closes the file.
	OpenStoredFile(ctx context.Context, doctorID int64, storedName string) (afero.File, *entity.Document, error)
}

type documentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	visitRepo    repository.VisitRepository
	documentRepo repository.DocumentRepository
	storage      storage.FileStorage
	auditService service.AuditService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	documentRepo repository.DocumentRepository,
	fileStorage storage.FileStorage,
	auditService service.AuditService,
) DocumentUsecase {
	return &documentUsecase{
		db:           db,
		log:          log,
		visitRepo:    visitRepo,
		documentRepo: documentRepo,
		storage:      fileStorage,
		auditService: auditService,
	}
}

// Upload stores the file first and then records it. When the record cannot
// be written the stored file is removed again.
func (u *documentUsecase) Upload(ctx context.Context, doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
	if req.Content == nil {
		return nil, ErrNoFileProvided
	}

	secureName, ext, err := ValidateUploadName(req.FileName)
	if err != nil {
		return nil, err
	}

	visit, err := u.visitRepo.FindByID(ctx, u.db, doctorID, visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(req.Content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		u.log.Warnf("Failed to read upload: %+v", err)
		return nil, ErrFailedToSaveFile
	}
	head = head[:n]
	mimeType := mimetype.Detect(head).String()

	storedName := uuid.NewString() + "_" + secureName
	size, err := u.storage.Save(storedName, io.MultiReader(bytes.NewReader(head), req.Content))
	if err != nil {
		u.log.Warnf("Failed to save file: %+v", err)
		return nil, ErrFailedToSaveFile
	}

	document := &entity.Document{
		VisitID:     visit.ID,
		PatientID:   visit.PatientID,
		FileName:    secureName,
		FilePath:    storedName,
		FileType:    ext,
		MimeType:    mimeType,
		FileSize:    size,
		Description: req.Description,
	}

	if err := u.createDocument(ctx, doctorID, document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		if removeErr := u.storage.Remove(storedName); removeErr != nil {
			u.log.WithField("file", storedName).Warnf("Failed to remove orphaned file: %+v", removeErr)
		}
		return nil, ErrDocumentSaveFailed
	}

	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) createDocument(ctx context.Context, doctorID int64, document *entity.Document) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.documentRepo.Create(ctx, tx, document); err != nil {
		return err
	}

	u.auditService.LogCreate(ctx, tx, doctorID, entity.AuditActionDocumentUpload, "document", document.ID, converter.DocumentToResponse(document))

	return tx.Commit().Error
}

func (u *documentUsecase) ListByVisit(ctx context.Context, doctorID, visitID int64) (*dto.DocumentListResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, doctorID, visitID)
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

	responses := converter.DocumentsToResponses(documents)
	return &dto.DocumentListResponse{
		Documents: responses,
		Total:     len(responses),
	}, nil
}

func (u *documentUsecase) Delete(ctx context.Context, doctorID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	document, err := u.documentRepo.FindByID(ctx, tx, doctorID, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	if _, err := u.documentRepo.Delete(ctx, tx, document.ID); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, tx, doctorID, entity.AuditActionDocumentDelete, "document", document.ID, converter.DocumentToResponse(document))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	removeStoredFiles(u.log, u.storage, []string{document.FilePath})
	return nil
}

func (u *documentUsecase) OpenStoredFile(ctx context.Context, doctorID int64, storedName string) (afero.File, *entity.Document, error) {
	document, err := u.documentRepo.FindByFilePath(ctx, u.db, doctorID, storedName)
	if err != nil {
		u.log.Warnf("Failed to find document by path: %+v", err)
		return nil, nil, err
	}
	if document == nil {
		return nil, nil, ErrDocumentNotFound
	}

	file, err := u.storage.Open(document.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, storage.ErrInvalidName) {
			return nil, nil, ErrDocumentNotFound
		}
		u.log.Warnf("Failed to open stored file: %+v", err)
		return nil, nil, err
	}

	return file, document, nil
}
