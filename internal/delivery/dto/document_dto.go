package dto

import "io"

// UploadDocumentRequest is built by the handler from the multipart form.
type UploadDocumentRequest struct {
	FileName    string
	Description string
	Content     io.Reader
}

type DocumentResponse struct {
	ID          int64  `json:"id"`
	VisitID     int64  `json:"visit_id"`
	PatientID   int64  `json:"patient_id"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	FileType    string `json:"file_type"`
	MimeType    string `json:"mime_type"`
	FileSize    int64  `json:"file_size"`
	Description string `json:"description"`
	URL         string `json:"url"`
	UploadedAt  string `json:"uploaded_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}
