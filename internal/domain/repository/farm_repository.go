package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmNotFound is returned when a farm is not found.
var ErrFarmNotFound = errors.New("farm not found")

// FarmRepository defines persistence operations for farms.
type FarmRepository interface {
	// Create persists a new farm.
	Create(ctx context.Context, farm *entity.Farm) error

	// FindByID retrieves a farm by its unique ID, including its inventory lots.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// FindByOwner retrieves all farms owned by a user, including inventory lots.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error)
}
