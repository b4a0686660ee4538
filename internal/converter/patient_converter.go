package converter

import (
	"time"

	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// formatDate renders an optional date as ISO-8601, or nil when absent so the
// JSON field serializes as null rather than an empty string.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		Email:       patient.Email,
		Phone:       patient.Phone,
		DateOfBirth: formatDate(patient.DateOfBirth),
		Address:     patient.Address,
		LastVisit:   formatDate(patient.LastVisit),
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities, always returning
// a non-nil slice so empty results serialize as [].
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientToRecentResponse converts a Patient entity to the compact shape
// shown in the dashboard's recent patients list
func PatientToRecentResponse(patient *entity.Patient) dto.RecentPatientResponse {
	return dto.RecentPatientResponse{
		ID:        patient.ID,
		FirstName: patient.FirstName,
		LastName:  patient.LastName,
		Phone:     patient.Phone,
		LastVisit: formatDate(patient.LastVisit),
	}
}

func PatientsToRecentResponses(patients []entity.Patient) []dto.RecentPatientResponse {
	responses := make([]dto.RecentPatientResponse, len(patients))
	for i := range patients {
		responses[i] = PatientToRecentResponse(&patients[i])
	}
	return responses
}
