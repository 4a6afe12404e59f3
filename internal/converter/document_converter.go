package converter

import (
	"net/url"

	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

// UploadsURLPrefix is where stored documents are served from.
const UploadsURLPrefix = "/uploads/"

// DocumentToResponse converts a Document entity to DocumentResponse DTO
func DocumentToResponse(document *entity.Document) *dto.DocumentResponse {
	if document == nil {
		return nil
	}

	return &dto.DocumentResponse{
		ID:          document.ID,
		VisitID:     document.VisitID,
		PatientID:   document.PatientID,
		FileName:    document.FileName,
		FilePath:    document.FilePath,
		FileType:    document.FileType,
		MimeType:    document.MimeType,
		FileSize:    document.FileSize,
		Description: document.Description,
		URL:         UploadsURLPrefix + url.PathEscape(document.FilePath),
		UploadedAt:  FormatTimestamp(document.UploadedAt),
	}
}

func DocumentsToResponses(documents []entity.Document) []dto.DocumentResponse {
	responses := make([]dto.DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = *DocumentToResponse(&documents[i])
	}
	return responses
}
