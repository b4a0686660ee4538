package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a dental appointment. Patient and dentist names are
// denormalized onto the row so listing and dashboard queries never need a
// join or a lazily loaded relation.
type Appointment struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int64             `gorm:"not null;index" json:"patient_id"`
	PatientName   string            `gorm:"type:varchar(200);not null" json:"patient_name"`
	DentistName   string            `gorm:"type:varchar(200);not null" json:"dentist_name"`
	Date          time.Time         `gorm:"type:date;not null;index" json:"date"`
	StartTime     string            `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Type          string            `gorm:"type:varchar(100);not null" json:"type"`
	TreatmentType *string           `gorm:"type:varchar(100)" json:"treatment_type,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsUpcoming reports whether the appointment still counts as upcoming on the
// given day: not in the past and not completed or cancelled.
func (a *Appointment) IsUpcoming(day time.Time) bool {
	if a.Status != AppointmentStatusScheduled && a.Status != AppointmentStatusConfirmed {
		return false
	}
	y, m, d := day.Date()
	return !a.Date.Before(time.Date(y, m, d, 0, 0, 0, 0, day.Location()))
}
