package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID     int64  `json:"patientId" validate:"required,gt=0"`
	DentistName   string `json:"dentistName" validate:"required,max=200"`
	Date          string `json:"date" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	Type          string `json:"type" validate:"required,max=100"`
	Status        string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	TreatmentType string `json:"treatmentType" validate:"omitempty,max=100"`
	Notes         string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	DentistName   string `json:"dentistName" validate:"omitempty,max=200"`
	Date          string `json:"date" validate:"omitempty"`
	StartTime     string `json:"startTime" validate:"omitempty"`
	EndTime       string `json:"endTime" validate:"omitempty"`
	Type          string `json:"type" validate:"omitempty,max=100"`
	Status        string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	TreatmentType string `json:"treatmentType" validate:"omitempty,max=100"`
	Notes         string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            int64     `json:"id"`
	PatientID     int64     `json:"patientId"`
	PatientName   string    `json:"patientName"`
	DentistName   string    `json:"dentistName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	TreatmentType *string   `json:"treatmentType"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
