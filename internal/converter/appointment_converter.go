package converter

import (
	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:            appointment.ID,
		PatientID:     appointment.PatientID,
		PatientName:   appointment.PatientName,
		DentistName:   appointment.DentistName,
		Date:          appointment.Date.Format(dateLayout),
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		Status:        string(appointment.Status),
		Type:          appointment.Type,
		TreatmentType: appointment.TreatmentType,
		Notes:         appointment.Notes,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToUpcomingResponse converts an Appointment entity to the shape
// shown in the dashboard's upcoming appointments list
func AppointmentToUpcomingResponse(appointment *entity.Appointment) dto.UpcomingAppointmentResponse {
	return dto.UpcomingAppointmentResponse{
		ID:            appointment.ID,
		PatientName:   appointment.PatientName,
		DentistName:   appointment.DentistName,
		Date:          appointment.Date.Format(dateLayout),
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		Status:        string(appointment.Status),
		Type:          appointment.Type,
		TreatmentType: appointment.TreatmentType,
		PatientID:     appointment.PatientID,
	}
}

func AppointmentsToUpcomingResponses(appointments []entity.Appointment) []dto.UpcomingAppointmentResponse {
	responses := make([]dto.UpcomingAppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = AppointmentToUpcomingResponse(&appointments[i])
	}
	return responses
}
