package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table. ListingID references
// listings.id, BuyerID references users.id.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    float64   `gorm:"type:decimal(12,2);not null;check:amount > 0"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Logistics *LogisticsModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// LogisticsModel mirrors the 'logistics' table. The unique index on
// TransactionID enforces the 1:1 invariant at the storage layer, closing the
// race between concurrent creation attempts.
type LogisticsModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TransactionID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status            string    `gorm:"type:varchar(20);not null;default:'booked'"`
	Carrier           string    `gorm:"type:varchar(100);not null"`
	TrackingNumber    string    `gorm:"type:varchar(100);not null"`
	EstimatedDelivery time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (LogisticsModel) TableName() string {
	return "logistics"
}
