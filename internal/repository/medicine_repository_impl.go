package repository

import (
	"context"
	"errors"

	"dental-care-api/internal/domain/entity"
	domainRepo "dental-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

var medicineSearchSpec = entity.SearchSpec{
	Fields: []entity.SearchField{
		{Column: "name", Fold: true},
		{Column: "category", Fold: true},
		{Column: "id", CastText: true},
	},
}

var medicineSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"category":   "category",
	"price":      "price",
	"stock":      "stock",
	"expiryDate": "expiry_date",
	"createdAt":  "created_at",
}

type medicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) domainRepo.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *medicineRepository) FindByID(ctx context.Context, id int64) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Medicine, int64, error) {
	var total int64
	countQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Medicine{}), medicineSearchSpec, q.Search)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var medicines []entity.Medicine
	findQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Medicine{}), medicineSearchSpec, q.Search)
	err := applySort(findQuery, medicineSortColumns, q).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, err
	}

	return medicines, total, nil
}

func (r *medicineRepository) Search(ctx context.Context, query string) ([]entity.Medicine, error) {
	var medicines []entity.Medicine
	err := applySearch(r.db.WithContext(ctx).Model(&entity.Medicine{}), medicineSearchSpec, query).
		Limit(typeaheadLimit).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, medicine *entity.Medicine) error {
	return r.db.WithContext(ctx).Save(medicine).Error
}

func (r *medicineRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Medicine{}).Error
}
