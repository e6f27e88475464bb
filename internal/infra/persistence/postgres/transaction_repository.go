package postgres

import (
	"context"

	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	"beantrade/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository implements the repository.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create persists a new marketplace transaction.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrListingNotFound.WrapMessage("invalid listing reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAttributes.WrapMessage("amount must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindByID retrieves a transaction by its unique ID.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.findByID(ctx, id, false)
}

// FindByIDForUpdate retrieves a transaction holding a FOR UPDATE row lock.
func (repo *transactionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *transactionRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Transaction, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var txnM model.TransactionModel
	if err := query.Where("id = ?", id).First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&txnM), nil
}

// UpdateStatus sets the transaction's lifecycle status.
func (repo *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// SumActiveByListing returns the sum of amounts of pending, confirmed and paid
// transactions against the given listing. Callers must hold the listing row
// lock when using the result for the economic-bound check.
func (repo *transactionRepository) SumActiveByListing(ctx context.Context, listingID uuid.UUID) (float64, error) {
	return repo.sumByListing(ctx, listingID, []string{
		entity.TransactionStatusPending.String(),
		entity.TransactionStatusConfirmed.String(),
		entity.TransactionStatusPaid.String(),
	})
}

// SumPaidByListing returns the sum of amounts of paid transactions against the
// given listing.
func (repo *transactionRepository) SumPaidByListing(ctx context.Context, listingID uuid.UUID) (float64, error) {
	return repo.sumByListing(ctx, listingID, []string{
		entity.TransactionStatusPaid.String(),
	})
}

func (repo *transactionRepository) sumByListing(ctx context.Context, listingID uuid.UUID, statuses []string) (float64, error) {
	var total float64

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("listing_id = ? AND status IN ?", listingID, statuses).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum transaction amounts")
	}

	return total, nil
}

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		ListingID: data.ListingID,
		BuyerID:   data.BuyerID,
		Amount:    data.Amount,
		Status:    entity.TransactionStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:        data.ID,
		ListingID: data.ListingID,
		BuyerID:   data.BuyerID,
		Amount:    data.Amount,
		Status:    data.Status.String(),
	}
}
