package handler

import (
	"encoding/json"
	"net/http"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"
	"ehr-backend/pkg/validator"
)

type EHRRecordHandler struct {
	ehrRecordUsecase usecase.EHRRecordUsecase
	validator        *validator.CustomValidator
}

func NewEHRRecordHandler(ehrRecordUsecase usecase.EHRRecordUsecase, validator *validator.CustomValidator) *EHRRecordHandler {
	return &EHRRecordHandler{
		ehrRecordUsecase: ehrRecordUsecase,
		validator:        validator,
	}
}

func (h *EHRRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	visitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	record, err := h.ehrRecordUsecase.Get(r.Context(), doctorID, visitID)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrEHRRecordNotFound:
			response.NotFound(w, "EHR record not found")
		default:
			response.InternalServerError(w, "Failed to get EHR record")
		}
		return
	}

	response.Success(w, http.StatusOK, "EHR record retrieved successfully", record)
}

func (h *EHRRecordHandler) Save(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	visitID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid visit ID", nil)
		return
	}

	var req dto.SaveEHRRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.ehrRecordUsecase.Save(r.Context(), doctorID, visitID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to save EHR record")
		}
		return
	}

	response.Success(w, http.StatusOK, "EHR record saved", record)
}
