// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "beantrade/internal/delivery/context"
	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// farmService implements the FarmUsecase interface.
type farmService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	farmRepo      repository.FarmRepository
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// FarmServiceParams holds dependencies for FarmService, injected by Fx.
type FarmServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	FarmRepo      repository.FarmRepository
	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewFarmService is the constructor for farmService.
func NewFarmService(params FarmServiceParams) usecase.FarmUsecase {
	return &farmService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		farmRepo:      params.FarmRepo,
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *farmService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFarm registers a new farm for the given owner.
func (srv *farmService) CreateFarm(ctx context.Context, ownerID uuid.UUID, input usecase.CreateFarmInput) (*entity.Farm, error) {
	srv.log(ctx).Info("Creating farm", slog.Any("ownerID", ownerID), slog.String("name", input.Name))

	if input.SizeHectares <= 0 {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("farm size must be positive")
	}

	exists, err := srv.userRepo.Exists(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check farm owner")
	}
	if !exists {
		return nil, domainerrors.ErrOwnerNotFound.WrapMessage("farm owner does not exist")
	}

	farm := &entity.Farm{
		OwnerID:       ownerID,
		Name:          input.Name,
		Location:      input.Location,
		SizeHectares:  input.SizeHectares,
		CoffeeType:    input.CoffeeType,
		Certification: input.Certification,
	}

	if err := srv.farmRepo.Create(ctx, farm); err != nil {
		srv.log(ctx).Warn("Failed to create farm", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create farm")
	}

	srv.log(ctx).Debug("Farm created", slog.Any("farmID", farm.ID))

	return farm, nil
}

// RecordInventory records a new harvest lot on one of the actor's farms.
func (srv *farmService) RecordInventory(ctx context.Context, actorID uuid.UUID, input usecase.RecordInventoryInput) (*entity.Inventory, error) {
	srv.log(ctx).Info("Recording inventory lot", slog.Any("farmID", input.FarmID))

	if input.QuantityKg < 0 {
		return nil, domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative")
	}
	if input.HarvestDate.After(time.Now()) {
		return nil, domainerrors.ErrFutureHarvestDate.WrapMessage("harvest date is in the future")
	}

	farm, err := srv.farmRepo.FindByID(ctx, input.FarmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound.WrapMessage("farm does not exist")
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}
	if farm.OwnerID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the farm owner can record inventory")
	}

	lot := &entity.Inventory{
		FarmID:       input.FarmID,
		QuantityKg:   input.QuantityKg,
		QualityGrade: input.QualityGrade,
		HarvestDate:  input.HarvestDate,
	}

	if err := srv.inventoryRepo.Create(ctx, lot); err != nil {
		srv.log(ctx).Warn("Failed to record inventory lot", slog.Any("farmID", input.FarmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create inventory lot")
	}

	return lot, nil
}

// AdjustInventory applies a signed quantity delta to a lot. The lot row is
// locked for the duration of the check-and-write so concurrent adjustments
// serialize instead of losing updates.
func (srv *farmService) AdjustInventory(ctx context.Context, actorID uuid.UUID, input usecase.AdjustInventoryInput) (*entity.Inventory, error) {
	srv.log(ctx).Info("Adjusting inventory lot", slog.Any("inventoryID", input.InventoryID), slog.Float64("deltaKg", input.DeltaKg))

	var adjusted *entity.Inventory
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		inventoryRepo := repoFactory.InventoryRepo()

		lot, err := inventoryRepo.FindByIDForUpdate(ctx, input.InventoryID)
		if err != nil {
			if errors.Is(err, repository.ErrInventoryNotFound) {
				return domainerrors.ErrInventoryNotFound.WrapMessage("inventory lot does not exist")
			}

			return errors.Wrap(err, "failed to lock inventory lot")
		}

		farm, err := repoFactory.FarmRepo().FindByID(ctx, lot.FarmID)
		if err != nil {
			return errors.Wrap(err, "failed to find farm for inventory lot")
		}
		if farm.OwnerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the farm owner can adjust inventory")
		}

		newQuantity := lot.QuantityKg + input.DeltaKg
		if newQuantity < 0 {
			return domainerrors.ErrInsufficientQuantity.WrapMessage("adjustment would drive quantity negative")
		}

		if err := inventoryRepo.UpdateQuantity(ctx, lot.ID, newQuantity); err != nil {
			return errors.Wrap(err, "failed to update inventory quantity")
		}

		lot.QuantityKg = newQuantity
		adjusted = lot

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to adjust inventory", slog.Any("inventoryID", input.InventoryID), slog.Any("error", err))

		return nil, err
	}

	return adjusted, nil
}

// ListFarms returns all farms owned by a user, inventory included.
func (srv *farmService) ListFarms(ctx context.Context, ownerID uuid.UUID) ([]*entity.Farm, error) {
	farms, err := srv.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farms by owner")
	}

	return farms, nil
}

// GetFarm retrieves a single farm the actor owns.
func (srv *farmService) GetFarm(ctx context.Context, actorID, farmID uuid.UUID) (*entity.Farm, error) {
	farm, err := srv.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, domainerrors.ErrFarmNotFound.WrapMessage("farm does not exist")
		}

		return nil, errors.Wrap(err, "failed to find farm")
	}
	if farm.OwnerID != actorID {
		return nil, domainerrors.ErrForbidden.WrapMessage("farm belongs to another user")
	}

	return farm, nil
}
