package handler

import (
	"net/http"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := currentDoctorID(w, r)
	if !ok {
		return
	}

	var query dto.ListQuery
	if err := decodeQuery(r, &query); err != nil {
		response.BadRequest(w, "Invalid query parameters")
		return
	}
	query.Normalize()

	logs, total, err := h.auditLogUsecase.ListForDoctor(r.Context(), doctorID, query)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs,
		response.NewMeta(query.Page, query.Limit, total))
}
