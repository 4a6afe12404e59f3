package converter

import (
	"ehr-backend/internal/delivery/dto"
	"ehr-backend/internal/domain/entity"
)

func EHRRecordToResponse(record *entity.EHRRecord) *dto.EHRRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.EHRRecordResponse{
		ID:        record.ID,
		VisitID:   record.VisitID,
		PatientID: record.PatientID,

		FirstName:             record.FirstName,
		LastName:              record.LastName,
		BirthDate:             formatDatePtr(record.BirthDate),
		Gender:                record.Gender,
		Phone:                 record.Phone,
		Email:                 record.Email,
		Address:               record.Address,
		EmergencyContactName:  record.EmergencyContactName,
		EmergencyContactPhone: record.EmergencyContactPhone,

		BloodPressureSystolic:  record.BloodPressureSystolic,
		BloodPressureDiastolic: record.BloodPressureDiastolic,
		Temperature:            record.Temperature,
		HeartRate:              record.HeartRate,
		Weight:                 record.Weight,
		Height:                 record.Height,
		OxygenSaturation:       record.OxygenSaturation,

		PastIllnesses:      record.PastIllnesses,
		Surgeries:          record.Surgeries,
		FamilyHistory:      record.FamilyHistory,
		ChronicConditions:  record.ChronicConditions,
		CurrentMedications: record.CurrentMedications,
		Allergies:          record.Allergies,
		HasAllergies:       record.HasAllergies,
		Immunizations:      record.Immunizations,

		LabTests:      record.LabTests,
		LabResults:    record.LabResults,
		Diagnosis:     record.Diagnosis,
		TreatmentPlan: record.TreatmentPlan,
		FollowUpDate:  formatDatePtr(record.FollowUpDate),
		Smoker:        record.Smoker,
		InsuranceType: record.InsuranceType,
		Notes:         record.Notes,

		CreatedAt: FormatTimestamp(record.CreatedAt),
		UpdatedAt: FormatTimestamp(record.UpdatedAt),
	}
}

// ApplyEHRRecordRequest copies the request onto the record. Dates are
// already validated by the request validator.
func ApplyEHRRecordRequest(record *entity.EHRRecord, req *dto.SaveEHRRecordRequest) error {
	birthDate, err := ParseDatePtr(req.BirthDate)
	if err != nil {
		return err
	}
	followUp, err := ParseDatePtr(req.FollowUpDate)
	if err != nil {
		return err
	}

	record.FirstName = req.FirstName
	record.LastName = req.LastName
	record.BirthDate = birthDate
	record.Gender = req.Gender
	record.Phone = req.Phone
	record.Email = req.Email
	record.Address = req.Address
	record.EmergencyContactName = req.EmergencyContactName
	record.EmergencyContactPhone = req.EmergencyContactPhone

	record.BloodPressureSystolic = req.BloodPressureSystolic
	record.BloodPressureDiastolic = req.BloodPressureDiastolic
	record.Temperature = req.Temperature
	record.HeartRate = req.HeartRate
	record.Weight = req.Weight
	record.Height = req.Height
	record.OxygenSaturation = req.OxygenSaturation

	record.PastIllnesses = req.PastIllnesses
	record.Surgeries = req.Surgeries
	record.FamilyHistory = req.FamilyHistory
	record.ChronicConditions = req.ChronicConditions
	record.CurrentMedications = req.CurrentMedications
	record.Allergies = req.Allergies
	record.HasAllergies = req.HasAllergies
	record.Immunizations = req.Immunizations

	record.LabTests = req.LabTests
	record.LabResults = req.LabResults
	record.Diagnosis = req.Diagnosis
	record.TreatmentPlan = req.TreatmentPlan
	record.FollowUpDate = followUp
	record.Smoker = req.Smoker
	record.InsuranceType = req.InsuranceType
	record.Notes = req.Notes
	return nil
}
