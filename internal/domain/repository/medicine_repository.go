package repository

import (
	"context"

	"dental-care-api/internal/domain/entity"
)

type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	FindByID(ctx context.Context, id int64) (*entity.Medicine, error)
	List(ctx context.Context, q entity.PageQuery) ([]entity.Medicine, int64, error)
	Search(ctx context.Context, query string) ([]entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id int64) error
}
