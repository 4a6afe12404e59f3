package converter

import (
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		DoctorNumber: doctor.DoctorNumber,
		Name:         doctor.Name,
		Email:        doctor.Email,
	}
}
