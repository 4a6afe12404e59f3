package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ehr-backend/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
)

func TestAuditLogHandler_List(t *testing.T) {
	var gotQuery dto.ListQuery
	h := NewAuditLogHandler(&fakeAuditLogUsecase{
		list: func(doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error) {
			gotQuery = query
			return []dto.AuditLogResponse{{ID: 1, Action: "patient.create"}}, 1, nil
		},
	})

	w := newRecorder()
	h.List(w, asDoctor(httptest.NewRequest(http.MethodGet, "/api/audit-logs?limit=500", nil), 1, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.ListQuery{Page: 1, Limit: dto.MaxPageLimit}, gotQuery)
	assert.Contains(t, w.Body.String(), `"action":"patient.create"`)
	assert.Contains(t, w.Body.String(), `"meta":{"page":1,"limit":100,"total":1,"total_pages":1}`)
}

func TestAuditLogHandler_Errors(t *testing.T) {
	h := NewAuditLogHandler(&fakeAuditLogUsecase{
		list: func(doctorID int64, query dto.ListQuery) ([]dto.AuditLogResponse, int64, error) {
			return nil, 0, errors.New("connection reset")
		},
	})

	w := newRecorder()
	h.List(w, asDoctor(httptest.NewRequest(http.MethodGet, "/api/audit-logs?page=abc", nil), 1, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid query parameters")

	w = newRecorder()
	h.List(w, asDoctor(httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil), 1, nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to get audit logs")

	w = newRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/audit-logs", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
