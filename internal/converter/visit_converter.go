package converter

import (
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:             visit.ID,
		PatientID:      visit.PatientID,
		VisitDate:      FormatDate(visit.VisitDate),
		VisitType:      visit.VisitType,
		ChiefComplaint: visit.ChiefComplaint,
		Notes:          visit.Notes,
		CreatedAt:      FormatTimestamp(visit.CreatedAt),
		UpdatedAt:      FormatTimestamp(visit.UpdatedAt),
	}
}

// VisitSummariesToResponses keeps the document count of each visit.
func VisitSummariesToResponses(summaries []entity.VisitSummary) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(summaries))
	for i := range summaries {
		resp := VisitToResponse(&summaries[i].Visit)
		count := summaries[i].DocumentCount
		resp.DocumentCount = &count
		responses[i] = *resp
	}
	return responses
}
