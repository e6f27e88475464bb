// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"beantrade/config"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	defaultTxMaxRetries  = 3
	defaultTxRetryBackoff = 50 * time.Millisecond
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db           *gorm.DB
	maxRetries   int
	retryBackoff time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// UserRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// AuthRepo creates an auth repository bound to the transaction.
func (f *gormRepositoryFactory) AuthRepo() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

// RefreshTokenRepo creates a refresh token repository bound to the transaction.
func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

// FarmRepo creates a farm repository bound to the transaction.
func (f *gormRepositoryFactory) FarmRepo() repository.FarmRepository {
	return NewFarmRepository(f.tx)
}

// InventoryRepo creates an inventory repository bound to the transaction.
func (f *gormRepositoryFactory) InventoryRepo() repository.InventoryRepository {
	return NewInventoryRepository(f.tx)
}

// ListingRepo creates a listing repository bound to the transaction.
func (f *gormRepositoryFactory) ListingRepo() repository.ListingRepository {
	return NewListingRepository(f.tx)
}

// TransactionRepo creates a marketplace transaction repository bound to the transaction.
func (f *gormRepositoryFactory) TransactionRepo() repository.TransactionRepository {
	return NewTransactionRepository(f.tx)
}

// LogisticsRepo creates a logistics repository bound to the transaction.
func (f *gormRepositoryFactory) LogisticsRepo() repository.LogisticsRepository {
	return NewLogisticsRepository(f.tx)
}

// MessageRepo creates a message repository bound to the transaction.
func (f *gormRepositoryFactory) MessageRepo() repository.MessageRepository {
	return NewMessageRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	maxRetries := defaultTxMaxRetries
	retryBackoff := defaultTxRetryBackoff
	if cfg != nil && cfg.Store != nil {
		if cfg.Store.MaxRetries > 0 {
			maxRetries = cfg.Store.MaxRetries
		}
		if cfg.Store.RetryBackoff > 0 {
			retryBackoff = cfg.Store.RetryBackoff
		}
	}

	return &gormTransactionManager{
		db:           db,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
	}
}

// Execute runs the given function within a single database transaction.
// Transient concurrency failures (deadlock, serialization conflict) restart
// the whole transaction up to maxRetries times; after exhaustion the caller
// receives the retryable ErrStoreContention.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var lastErr error

	for attempt := 0; attempt <= tm.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return domainerrors.ErrStoreContention.WrapMessage("context cancelled during retry wait")
			case <-time.After(tm.retryBackoff * time.Duration(attempt)):
			}
		}

		err := tm.executeOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isTransientError(err) {
			return err
		}
		lastErr = err
	}

	return domainerrors.ErrStoreContention.WrapMessage(
		fmt.Sprintf("transaction still contended after %d attempts: %v", tm.maxRetries+1, lastErr))
}

// executeOnce runs one transaction attempt.
func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
