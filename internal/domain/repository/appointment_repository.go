package repository

import (
	"context"
	"time"

	"dental-care-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Appointment, int64, error)
	Search(ctx context.Context, query string) ([]entity.Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountByDate(ctx context.Context, day time.Time) (int64, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error)
	CountByType(ctx context.Context) ([]entity.StatCount, error)
	CountByStatus(ctx context.Context) ([]entity.StatCount, error)
	CountByTreatmentType(ctx context.Context) ([]entity.StatCount, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id int64) error
}
