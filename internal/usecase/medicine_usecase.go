package usecase

import (
	"context"
	"errors"

	"dental-care-api/internal/converter"
	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
	"dental-care-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrMedicineNotFound = errors.New("medicine not found")

type MedicineUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MedicineResponse, error)
	List(ctx context.Context, q entity.PageQuery) (*dto.PageResponse[dto.MedicineResponse], error)
	Search(ctx context.Context, query string) ([]dto.MedicineResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	Delete(ctx context.Context, id int64) error
}

type medicineUsecase struct {
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(log *logrus.Logger, medicineRepo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		medicineRepo: medicineRepo,
	}
}

func (u *medicineUsecase) Create(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	medicine := &entity.Medicine{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ExpiryDate:  expiry,
	}

	if err := u.medicineRepo.Create(ctx, medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetByID(ctx context.Context, id int64) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) List(ctx context.Context, q entity.PageQuery) (*dto.PageResponse[dto.MedicineResponse], error) {
	medicines, total, err := u.medicineRepo.List(ctx, q)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}

	return dto.NewPageResponse(converter.MedicinesToResponses(medicines), q.Page, q.Size, total), nil
}

func (u *medicineUsecase) Search(ctx context.Context, query string) ([]dto.MedicineResponse, error) {
	medicines, err := u.medicineRepo.Search(ctx, query)
	if err != nil {
		u.log.Warnf("Failed to search medicines: %+v", err)
		return nil, err
	}

	return converter.MedicinesToResponses(medicines), nil
}

func (u *medicineUsecase) Update(ctx context.Context, id int64, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	medicine.Name = req.Name
	medicine.Category = req.Category
	medicine.Description = req.Description
	medicine.Price = req.Price
	medicine.Stock = req.Stock
	if expiry != nil {
		medicine.ExpiryDate = expiry
	}

	if err := u.medicineRepo.Update(ctx, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) Delete(ctx context.Context, id int64) error {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	if err := u.medicineRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete medicine: %+v", err)
		return err
	}

	return nil
}
