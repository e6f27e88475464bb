package repository

import (
	"context"
	"errors"

	"beantrade/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLogisticsNotFound is returned when a logistics record is not found.
var ErrLogisticsNotFound = errors.New("logistics record not found")

// ErrLogisticsExists is returned when a logistics record already exists for a
// transaction. The unique constraint on transaction_id raises it under
// concurrent creation attempts as well.
var ErrLogisticsExists = errors.New("logistics record already exists for transaction")

// LogisticsRepository defines persistence operations for shipment tracking records.
type LogisticsRepository interface {
	// Create persists a new logistics record. Returns ErrLogisticsExists when
	// the transaction already has one.
	Create(ctx context.Context, logistics *entity.Logistics) error

	// FindByID retrieves a logistics record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Logistics, error)

	// FindByTransactionID retrieves the logistics record for a transaction.
	FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Logistics, error)

	// UpdateStatus sets the shipment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LogisticsStatus) error
}
