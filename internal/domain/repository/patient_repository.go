package repository

import (
	"context"

	"dental-care-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int64) (*entity.Patient, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Patient, int64, error)
	Search(ctx context.Context, query string) ([]entity.Patient, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Patient, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id int64) error
}
