package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
	"ehr-backend/internal/usecase"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fileName string, content []byte, description string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if description != "" {
		require.NoError(t, writer.WriteField("description", description))
	}
	if content != nil {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadRequest(body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/visits/7/documents", body)
	req.Header.Set("Content-Type", contentType)
	return asDoctor(req, 1, map[string]string{"id": "7"})
}

func TestDocumentHandler_Upload(t *testing.T) {
	var got dto.UploadDocumentRequest
	var gotContent []byte
	h := NewDocumentHandler(&fakeDocumentUsecase{
		upload: func(doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
			got = *req
			content, err := io.ReadAll(req.Content)
			if err != nil {
				return nil, err
			}
			gotContent = content
			return &dto.DocumentResponse{ID: 11, VisitID: visitID, FileName: req.FileName}, nil
		},
	}, 1<<20)

	body, contentType := multipartBody(t, "scan.pdf", []byte("%PDF-1.4 test"), "chest x-ray")
	w := newRecorder()
	h.Upload(w, uploadRequest(body, contentType))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "scan.pdf", got.FileName)
	assert.Equal(t, "chest x-ray", got.Description)
	assert.Equal(t, []byte("%PDF-1.4 test"), gotContent)
	assert.Contains(t, w.Body.String(), `"document":{"id":11`)
}

func TestDocumentHandler_UploadRejects(t *testing.T) {
	h := NewDocumentHandler(&fakeDocumentUsecase{
		upload: func(doctorID, visitID int64, req *dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
			if strings.HasSuffix(req.FileName, ".exe") {
				return nil, usecase.ErrFileTypeNotAllowed
			}
			return nil, usecase.ErrVisitNotFound
		},
	}, 256)

	t.Run("disallowed type", func(t *testing.T) {
		body, contentType := multipartBody(t, "setup.exe", []byte("MZ"), "")
		w := newRecorder()
		h.Upload(w, uploadRequest(body, contentType))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "File type not allowed")
	})

	t.Run("unknown visit", func(t *testing.T) {
		body, contentType := multipartBody(t, "scan.pdf", []byte("%PDF"), "")
		w := newRecorder()
		h.Upload(w, uploadRequest(body, contentType))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		body, contentType := multipartBody(t, "scan.pdf", bytes.Repeat([]byte("a"), 4096), "")
		w := newRecorder()
		h.Upload(w, uploadRequest(body, contentType))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "File too large")
	})

	t.Run("not multipart", func(t *testing.T) {
		w := newRecorder()
		h.Upload(w, uploadRequest(strings.NewReader(`{}`), "application/json"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file provided")
	})

	t.Run("no file part", func(t *testing.T) {
		body, contentType := multipartBody(t, "", nil, "only a description")
		w := newRecorder()
		h.Upload(w, uploadRequest(body, contentType))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file provided")
	})

	t.Run("empty file name", func(t *testing.T) {
		body, contentType := multipartBody(t, "", []byte("x"), "")
		w := newRecorder()
		h.Upload(w, uploadRequest(body, contentType))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file selected")
	})
}

func TestDocumentHandler_ServeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "abc_scan.png", []byte("png-bytes"), 0o644))

	h := NewDocumentHandler(&fakeDocumentUsecase{
		open: func(doctorID int64, storedName string) (afero.File, *entity.Document, error) {
			if doctorID != 1 || storedName != "abc_scan.png" {
				return nil, nil, usecase.ErrDocumentNotFound
			}
			file, err := fs.Open(storedName)
			if err != nil {
				return nil, nil, err
			}
			return file, &entity.Document{FileName: "scan.png", FilePath: storedName, MimeType: "image/png"}, nil
		},
	}, 1<<20)

	w := newRecorder()
	req := httptest.NewRequest(http.MethodGet, "/uploads/abc_scan.png", nil)
	h.ServeFile(w, asDoctor(req, 1, map[string]string{"filename": "abc_scan.png"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())

	w = newRecorder()
	h.ServeFile(w, asDoctor(req, 2, map[string]string{"filename": "abc_scan.png"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
