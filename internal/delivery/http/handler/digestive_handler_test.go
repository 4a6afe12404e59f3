package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestDigestiveHandler_SaveAcceptsNumericSmoker(t *testing.T) {
	var got *dto.SaveDigestiveRequest
	h := NewDigestiveHandler(&fakeDigestiveUsecase{
		save: func(doctorID, patientID int64, req *dto.SaveDigestiveRequest) (*dto.DigestiveVisitResponse, error) {
			got = req
			id := int64(1)
			return &dto.DigestiveVisitResponse{ID: &id, PatientID: patientID, Smoker: bool(req.Smoker)}, nil
		},
	}, validator.NewValidator())

	body := `{"visit_date":"2024-03-01","liver":"normal","smoker":1,"insurance_type":"private"}`
	req := httptest.NewRequest(http.MethodPost, "/api/digestive/3", strings.NewReader(body))
	w := newRecorder()
	h.Save(w, asDoctor(req, 1, map[string]string{"patient_id": "3"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Saved"`)
	assert.Contains(t, w.Body.String(), `"smoker":true`)
	assert.True(t, bool(got.Smoker))
	assert.Equal(t, "private", got.InsuranceType)
}

func TestDigestiveHandler_SaveRejectsBadDate(t *testing.T) {
	h := NewDigestiveHandler(&fakeDigestiveUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/digestive/3", strings.NewReader(`{"visit_date":"March 1st"}`))
	w := newRecorder()
	h.Save(w, asDoctor(req, 1, map[string]string{"patient_id": "3"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "visit_date must be a date in YYYY-MM-DD format")
}
