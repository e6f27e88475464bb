// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateFarmInput defines the data required to register a farm.
type CreateFarmInput struct {
	Name          string
	Location      string
	SizeHectares  float64
	CoffeeType    string
	Certification string
}

// RecordInventoryInput defines the data required to record a harvest lot.
type RecordInventoryInput struct {
	FarmID       uuid.UUID
	QuantityKg   float64
	QualityGrade string
	HarvestDate  time.Time
}

// AdjustInventoryInput defines the data required to adjust a lot's quantity.
// Delta may be negative; the resulting quantity must not drop below zero.
type AdjustInventoryInput struct {
	InventoryID uuid.UUID
	DeltaKg     float64
}

// FarmUsecase defines the interface for farm and inventory operations.
// Every operation takes the acting user's ID; ownership is checked before any
// mutation.
type FarmUsecase interface {
	CreateFarm(ctx context.Context, ownerID uuid.UUID, input CreateFarmInput) (*entity.Farm, error)
	RecordInventory(ctx context.Context, actorID uuid.UUID, input RecordInventoryInput) (*entity.Inventory, error)
	AdjustInventory(ctx context.Context, actorID uuid.UUID, input AdjustInventoryInput) (*entity.Inventory, error)
	ListFarms(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error)
	GetFarm(ctx context.Context, actorID, farmID uuid.UUID) (*entity.Farm, error)
}
