package handler

import (
	"errors"
	"net/http"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"

	"github.com/gorilla/mux"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	maxUploadSize   int64
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, maxUploadSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		maxUploadSize:   maxUploadSize,
	}
}

// Upload handles a multipart document upload
// @Summary Upload a document to a visit
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Visit ID"
// @Param file formData file true "Document"
// @Param description formData string false "Description"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 413 {object} response.Response
// @Router /visits/{id}/documents [post]
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	visitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			response.RequestEntityTooLarge(w, "File too large")
		case errors.Is(err, http.ErrNotMultipart):
			response.BadRequest(w, "No file provided")
		default:
			response.BadRequest(w, "Invalid multipart form")
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := &dto.UploadDocumentRequest{
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		req.FileName = header.Filename
		req.Content = file
	case errors.Is(err, http.ErrMissingFile) && len(r.MultipartForm.Value["file"]) > 0:
		// A file part sent without a name is parsed as a plain value.
		response.BadRequest(w, "No file selected")
		return
	default:
		response.BadRequest(w, "No file provided")
		return
	}

	document, err := h.documentUsecase.Upload(r.Context(), doctorID, visitID, req)
	if err != nil {
		switch err {
		case usecase.ErrNoFileProvided:
			response.BadRequest(w, "No file provided")
		case usecase.ErrNoFileSelected:
			response.BadRequest(w, "No file selected")
		case usecase.ErrFileTypeNotAllowed:
			response.BadRequest(w, "File type not allowed")
		case usecase.ErrInvalidFilename:
			response.BadRequest(w, "Invalid filename")
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrFailedToSaveFile:
			response.InternalServerError(w, "Failed to save file")
		case usecase.ErrDocumentSaveFailed:
			response.BadRequest(w, "Failed to save document")
		default:
			response.InternalServerError(w, "Failed to upload document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document uploaded", map[string]interface{}{"document": document})
}

func (h *DocumentHandler) ListByVisit(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	visitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	documents, err := h.documentUsecase.ListByVisit(r.Context(), doctorID, visitID)
	if err != nil {
		if err == usecase.ErrVisitNotFound {
			response.NotFound(w, "Visit not found")
			return
		}
		response.InternalServerError(w, "Failed to get documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	documentID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := h.documentUsecase.Delete(r.Context(), doctorID, documentID); err != nil {
		if err == usecase.ErrDocumentNotFound {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalServerError(w, "Failed to delete document")
		return
	}

	response.Success(w, http.StatusOK, "Document deleted", nil)
}

// ServeFile streams a stored upload. Files that do not belong to one of the
// doctor's documents are reported as missing.
func (h *DocumentHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	file, document, err := h.documentUsecase.OpenStoredFile(r.Context(), doctorID, mux.Vars(r)["filename"])
	if err != nil {
		if err == usecase.ErrDocumentNotFound {
			response.NotFound(w, "File not found")
			return
		}
		response.InternalServerError(w, "Failed to read file")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.InternalServerError(w, "Failed to read file")
		return
	}

	if document.MimeType != "" {
		w.Header().Set("Content-Type", document.MimeType)
	}
	http.ServeContent(w, r, document.FileName, info.ModTime(), file)
}
