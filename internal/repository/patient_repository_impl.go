package repository

import (
	"context"
	"errors"

	"dental-care-api/internal/domain/entity"
	domainRepo "dental-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

// Phone numbers have no case, so the phone column matches without folding.
var patientSearchSpec = entity.SearchSpec{
	Fields: []entity.SearchField{
		{Column: "first_name", Fold: true},
		{Column: "last_name", Fold: true},
		{Column: "email", Fold: true},
		{Column: "phone"},
		{Column: "id", CastText: true},
	},
}

var patientSortColumns = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"phone":     "phone",
	"lastVisit": "last_visit",
	"createdAt": "created_at",
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Patient, int64, error) {
	var total int64
	countQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Patient{}), patientSearchSpec, q.Search)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var patients []entity.Patient
	findQuery := applySearch(r.db.WithContext(ctx).Model(&entity.Patient{}), patientSearchSpec, q.Search)
	err := applySort(findQuery, patientSortColumns, q).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

func (r *patientRepository) Search(ctx context.Context, query string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := applySearch(r.db.WithContext(ctx).Model(&entity.Patient{}), patientSearchSpec, query).
		Limit(typeaheadLimit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindRecent(ctx context.Context, limit int) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{}).Error
}
