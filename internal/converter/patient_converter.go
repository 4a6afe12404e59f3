package converter

import (
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:              patient.ID,
		DoctorID:        patient.DoctorID,
		FirstName:       patient.FirstName,
		LastName:        patient.LastName,
		BirthDate:       FormatDate(patient.BirthDate),
		InsuranceNumber: patient.InsuranceNumber,
		CreatedAt:       FormatTimestamp(patient.CreatedAt),
		UpdatedAt:       FormatTimestamp(patient.UpdatedAt),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
