package handler

import (
	"encoding/json"
	"net/http"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"
	"ehr-backend/pkg/validator"
)

type DigestiveHandler struct {
	digestiveUsecase usecase.DigestiveUsecase
	validator        *validator.CustomValidator
}

func NewDigestiveHandler(digestiveUsecase usecase.DigestiveUsecase, validator *validator.CustomValidator) *DigestiveHandler {
	return &DigestiveHandler{
		digestiveUsecase: digestiveUsecase,
		validator:        validator,
	}
}

func (h *DigestiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	patientID, err := pathID(r, "patient_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	record, err := h.digestiveUsecase.Get(r.Context(), doctorID, patientID)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get digestive visit")
		return
	}

	response.Success(w, http.StatusOK, "Digestive visit retrieved successfully", record)
}

func (h *DigestiveHandler) Save(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	patientID, err := pathID(r, "patient_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.SaveDigestiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.digestiveUsecase.Save(r.Context(), doctorID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to save digestive visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Saved", record)
}
