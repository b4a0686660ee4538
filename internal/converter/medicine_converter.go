package converter

import (
	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to its response DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Category:    medicine.Category,
		Description: medicine.Description,
		Price:       medicine.Price,
		Stock:       medicine.Stock,
		ExpiryDate:  formatDate(medicine.ExpiryDate),
		CreatedAt:   medicine.CreatedAt,
		UpdatedAt:   medicine.UpdatedAt,
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}
