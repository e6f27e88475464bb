package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines persistence operations for marketplace listings.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindByIDForUpdate retrieves a listing holding a row lock until the
	// surrounding transaction ends. Must only be called inside a
	// TransactionManager execution; it serializes concurrent placements
	// checking the listing's economic bound.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// UpdateStatus sets the listing's lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error

	// FindOpen retrieves all listings currently accepting transactions,
	// newest first.
	FindOpen(ctx context.Context) ([]*entity.Listing, error)
}
