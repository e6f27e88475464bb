package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a marketplace transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines persistence operations for marketplace transactions.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindByID retrieves a transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDForUpdate retrieves a transaction holding a row lock until the
	// surrounding transaction ends, serializing concurrent state transitions.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// UpdateStatus sets the transaction's lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error

	// SumActiveByListing returns the sum of amounts of all pending, confirmed
	// and paid transactions against the given listing.
	SumActiveByListing(ctx context.Context, listingID uuid.UUID) (float64, error)

	// SumPaidByListing returns the sum of amounts of all paid transactions
	// against the given listing.
	SumPaidByListing(ctx context.Context, listingID uuid.UUID) (float64, error)
}
