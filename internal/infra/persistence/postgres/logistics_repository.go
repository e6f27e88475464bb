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
)

// logisticsRepository implements the repository.LogisticsRepository interface using GORM.
type logisticsRepository struct {
	db *gorm.DB
}

// NewLogisticsRepository is the constructor for logisticsRepository.
func NewLogisticsRepository(db *gorm.DB) repository.LogisticsRepository {
	return &logisticsRepository{db: db}
}

// Create persists a new logistics record. The unique index on transaction_id
// makes a second booking for the same transaction surface as
// repository.ErrLogisticsExists, regardless of interleaving.
func (repo *logisticsRepository) Create(ctx context.Context, logistics *entity.Logistics) error {
	logisticsM := fromLogisticsDomain(logistics)

	if err := repo.db.WithContext(ctx).Create(logisticsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLogisticsExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTransactionNotFound.WrapMessage("invalid transaction reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create logistics record")
	}

	logistics.ID = logisticsM.ID
	logistics.CreatedAt = logisticsM.CreatedAt
	logistics.UpdatedAt = logisticsM.UpdatedAt

	return nil
}

// FindByID retrieves a logistics record by its unique ID.
func (repo *logisticsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Logistics, error) {
	var logisticsM model.LogisticsModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&logisticsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLogisticsNotFound
		}

		return nil, errors.Wrap(err, "failed to find logistics record by id")
	}

	return toLogisticsDomain(&logisticsM), nil
}

// FindByTransactionID retrieves the logistics record attached to a transaction.
func (repo *logisticsRepository) FindByTransactionID(ctx context.Context, transactionID uuid.UUID) (*entity.Logistics, error) {
	var logisticsM model.LogisticsModel
	if err := repo.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&logisticsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLogisticsNotFound
		}

		return nil, errors.Wrap(err, "failed to find logistics record by transaction id")
	}

	return toLogisticsDomain(&logisticsM), nil
}

// UpdateStatus sets the shipment status.
func (repo *logisticsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LogisticsStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LogisticsModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update logistics status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLogisticsNotFound
	}

	return nil
}

// toLogisticsDomain converts a GORM LogisticsModel to a domain Logistics entity.
func toLogisticsDomain(data *model.LogisticsModel) *entity.Logistics {
	if data == nil {
		return nil
	}

	return &entity.Logistics{
		ID:                data.ID,
		TransactionID:     data.TransactionID,
		Status:            entity.LogisticsStatus(data.Status),
		Carrier:           data.Carrier,
		TrackingNumber:    data.TrackingNumber,
		EstimatedDelivery: data.EstimatedDelivery,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromLogisticsDomain converts a domain Logistics entity to a GORM LogisticsModel.
func fromLogisticsDomain(data *entity.Logistics) *model.LogisticsModel {
	if data == nil {
		return nil
	}

	return &model.LogisticsModel{
		ID:                data.ID,
		TransactionID:     data.TransactionID,
		Status:            data.Status.String(),
		Carrier:           data.Carrier,
		TrackingNumber:    data.TrackingNumber,
		EstimatedDelivery: data.EstimatedDelivery,
	}
}
