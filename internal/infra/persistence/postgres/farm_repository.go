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

// farmRepository implements the repository.FarmRepository interface using GORM.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{db: db}
}

// Create persists a new farm.
func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOwnerNotFound.WrapMessage("invalid owner reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAttributes.WrapMessage("farm size must be positive")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
	}

	farm.ID = farmM.ID
	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

// FindByID retrieves a farm by its unique ID, preloading its inventory lots.
func (repo *farmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel

	if err := repo.db.WithContext(ctx).
		Preload("Inventory").
		Where("id = ?", id).
		First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by id")
	}

	return toFarmDomain(&farmM), nil
}

// FindByOwner retrieves all farms owned by a user, preloading inventory lots.
func (repo *farmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel

	if err := repo.db.WithContext(ctx).
		Preload("Inventory").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find farms by owner")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	inventory := make([]*entity.Inventory, 0, len(data.Inventory))
	for _, lot := range data.Inventory {
		inventory = append(inventory, toInventoryDomain(lot))
	}

	return &entity.Farm{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Location:      data.Location,
		SizeHectares:  data.SizeHectares,
		CoffeeType:    data.CoffeeType,
		Certification: data.Certification,
		Inventory:     inventory,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromFarmDomain converts a domain Farm entity to a GORM FarmModel.
func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Location:      data.Location,
		SizeHectares:  data.SizeHectares,
		CoffeeType:    data.CoffeeType,
		Certification: data.Certification,
	}
}
