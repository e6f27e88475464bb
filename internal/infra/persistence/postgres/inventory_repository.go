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

// inventoryRepository implements the repository.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create persists a new inventory lot.
func (repo *inventoryRepository) Create(ctx context.Context, lot *entity.Inventory) error {
	lotM := fromInventoryDomain(lot)

	if err := repo.db.WithContext(ctx).Create(lotM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFarmNotFound.WrapMessage("invalid farm reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inventory lot")
	}

	lot.ID = lotM.ID
	lot.CreatedAt = lotM.CreatedAt
	lot.UpdatedAt = lotM.UpdatedAt

	return nil
}

// FindByID retrieves an inventory lot by its unique ID.
func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return repo.findByID(ctx, id, false)
}

// FindByIDForUpdate retrieves an inventory lot holding a FOR UPDATE row lock.
func (repo *inventoryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	return repo.findByID(ctx, id, true)
}

func (repo *inventoryRepository) findByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.Inventory, error) {
	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var lotM model.InventoryModel
	if err := query.Where("id = ?", id).First(&lotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory lot by id")
	}

	return toInventoryDomain(&lotM), nil
}

// UpdateQuantity sets the lot's quantity to the given value.
func (repo *inventoryRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantityKg float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryModel{}).
		Where("id = ?", id).
		Update("quantity_kg", quantityKg)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientQuantity.WrapMessage("quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inventory quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// toInventoryDomain converts a GORM InventoryModel to a domain Inventory entity.
func toInventoryDomain(data *model.InventoryModel) *entity.Inventory {
	if data == nil {
		return nil
	}

	return &entity.Inventory{
		ID:           data.ID,
		FarmID:       data.FarmID,
		QuantityKg:   data.QuantityKg,
		QualityGrade: data.QualityGrade,
		HarvestDate:  data.HarvestDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromInventoryDomain converts a domain Inventory entity to a GORM InventoryModel.
func fromInventoryDomain(data *entity.Inventory) *model.InventoryModel {
	if data == nil {
		return nil
	}

	return &model.InventoryModel{
		ID:           data.ID,
		FarmID:       data.FarmID,
		QuantityKg:   data.QuantityKg,
		QualityGrade: data.QualityGrade,
		HarvestDate:  data.HarvestDate,
	}
}
