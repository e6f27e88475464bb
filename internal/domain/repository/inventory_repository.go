package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInventoryNotFound is returned when an inventory lot is not found.
var ErrInventoryNotFound = errors.New("inventory lot not found")

// InventoryRepository defines persistence operations for farm inventory lots.
type InventoryRepository interface {
	// Create persists a new inventory lot.
	Create(ctx context.Context, lot *entity.Inventory) error

	// FindByID retrieves an inventory lot by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)

	// FindByIDForUpdate retrieves an inventory lot holding a row lock until the
	// surrounding transaction ends. Must only be called inside a TransactionManager
	// execution; it guards the quantity read-modify-write.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)

	// UpdateQuantity sets the lot's quantity to the given value.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantityKg float64) error
}
