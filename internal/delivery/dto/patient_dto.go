package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=100"`
	LastName    string `json:"lastName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"`
	Address     string `json:"address"`
}

type UpdatePatientRequest struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=100"`
	LastName    string `json:"lastName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"`
	Address     string `json:"address"`
	LastVisit   string `json:"lastVisit" validate:"omitempty"`
}

// Response DTOs

// PatientResponse renders dates as ISO-8601 strings; optional dates are null
// when absent, never empty strings.
type PatientResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Address     string    `json:"address"`
	LastVisit   *string   `json:"lastVisit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
