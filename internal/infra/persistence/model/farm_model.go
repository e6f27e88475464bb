package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel mirrors the 'farms' table. OwnerID references users.id (UUID).
type FarmModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	SizeHectares  float64   `gorm:"type:decimal(10,2);not null;check:size_hectares > 0"`
	CoffeeType    string    `gorm:"type:varchar(50);not null"`
	Certification string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Inventory lots block farm deletion (restrict policy).
	Inventory []*InventoryModel `gorm:"foreignKey:FarmID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}

// InventoryModel mirrors the 'inventories' table. FarmID references farms.id (UUID).
type InventoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmID       uuid.UUID `gorm:"type:uuid;not null;index"`
	QuantityKg   float64   `gorm:"type:decimal(12,2);not null;check:quantity_kg >= 0"`
	QualityGrade string    `gorm:"type:varchar(50);not null"`
	HarvestDate  time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventories"
}
