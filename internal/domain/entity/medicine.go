package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine represents a medicine stocked by the clinic
type Medicine struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	ExpiryDate  *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}
