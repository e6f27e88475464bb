package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table. SellerID references users.id (UUID).
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductType string    `gorm:"type:varchar(100);not null"`
	QuantityKg  float64   `gorm:"type:decimal(12,2);not null;check:quantity_kg > 0"`
	PricePerKg  float64   `gorm:"type:decimal(12,2);not null;check:price_per_kg > 0"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'draft';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Placed transactions block listing deletion (restrict policy).
	Transactions []TransactionModel `gorm:"foreignKey:ListingID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
