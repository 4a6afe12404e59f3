package converter

import (
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

// DigestiveVisitToResponse renders a stored record or the unsaved defaults;
// the latter have no id.
func DigestiveVisitToResponse(visit *entity.DigestiveVisit) *dto.DigestiveVisitResponse {
	if visit == nil {
		return nil
	}

	var id *int64
	if visit.ID != 0 {
		v := visit.ID
		id = &v
	}

	return &dto.DigestiveVisitResponse{
		ID:                    id,
		PatientID:             visit.PatientID,
		VisitDate:             FormatDate(visit.VisitDate),
		DigestiveInspection:   visit.DigestiveInspection,
		DigestiveAuscultation: visit.DigestiveAuscultation,
		DigestivePalpation:    visit.DigestivePalpation,
		Liver:                 visit.Liver,
		Rectal:                visit.Rectal,
		Smoker:                visit.Smoker,
		InsuranceType:         visit.InsuranceType,
		Notes:                 visit.Notes,
		ImagePath:             visit.ImagePath,
	}
}
