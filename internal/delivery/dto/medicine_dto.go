package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ExpiryDate  string          `json:"expiryDate" validate:"omitempty"`
}

type UpdateMedicineRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ExpiryDate  string          `json:"expiryDate" validate:"omitempty"`
}

// Response DTOs

type MedicineResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ExpiryDate  *string         `json:"expiryDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
