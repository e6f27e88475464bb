package impl

import (
	"context"
	"testing"
	"time"

	"beantrade/internal/domain/entity"
	domainerrors "beantrade/internal/domain/errors"
	"beantrade/internal/domain/repository"
	mockRepo "beantrade/internal/mocks/repository"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// farmServiceFixtures holds all test dependencies for farm service tests.
type farmServiceFixtures struct {
	service       usecase.FarmUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	farmRepo      *mockRepo.MockFarmRepository
	inventoryRepo *mockRepo.MockInventoryRepository
}

func createTestFarmService(t *testing.T) farmServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)

	service := NewFarmService(FarmServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		FarmRepo:      farmRepo,
		InventoryRepo: inventoryRepo,
		Logger:        newDiscardLogger(),
	})

	return farmServiceFixtures{
		service:       service,
		txManager:     txManager,
		userRepo:      userRepo,
		farmRepo:      farmRepo,
		inventoryRepo: inventoryRepo,
	}
}

func TestFarmService_CreateFarm_Success(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := usecase.CreateFarmInput{
		Name:         "Finca La Esperanza",
		Location:     "Huila, Colombia",
		SizeHectares: 12.5,
		CoffeeType:   "arabica",
	}

	fx.userRepo.EXPECT().Exists(ctx, ownerID).Return(true, nil)
	fx.farmRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Farm")).
		Run(func(ctx context.Context, farm *entity.Farm) {
			farm.ID = uuid.New()
		}).
		Return(nil)

	farm, err := fx.service.CreateFarm(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, farm)
	assert.Equal(t, ownerID, farm.OwnerID)
	assert.Equal(t, input.Name, farm.Name)
}

func TestFarmService_CreateFarm_NonPositiveSize(t *testing.T) {
	fx := createTestFarmService(t)

	farm, err := fx.service.CreateFarm(context.Background(), uuid.New(), usecase.CreateFarmInput{
		Name:         "Bad Farm",
		SizeHectares: 0,
	})

	assert.Nil(t, farm)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAttributes))
}

func TestFarmService_CreateFarm_OwnerNotFound(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().Exists(ctx, ownerID).Return(false, nil)

	farm, err := fx.service.CreateFarm(ctx, ownerID, usecase.CreateFarmInput{
		Name:         "Orphan Farm",
		SizeHectares: 3,
	})

	assert.Nil(t, farm)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnerNotFound))
}

func TestFarmService_RecordInventory_Success(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()
	input := usecase.RecordInventoryInput{
		FarmID:       farmID,
		QuantityKg:   500,
		QualityGrade: "AA",
		HarvestDate:  time.Now().Add(-24 * time.Hour),
	}

	fx.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, OwnerID: ownerID}, nil)
	fx.inventoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Inventory")).
		Run(func(ctx context.Context, lot *entity.Inventory) {
			lot.ID = uuid.New()
		}).
		Return(nil)

	lot, err := fx.service.RecordInventory(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.Equal(t, farmID, lot.FarmID)
	assert.InDelta(t, 500.0, lot.QuantityKg, 0.0001)
}

func TestFarmService_RecordInventory_NegativeQuantity(t *testing.T) {
	fx := createTestFarmService(t)

	lot, err := fx.service.RecordInventory(context.Background(), uuid.New(), usecase.RecordInventoryInput{
		FarmID:     uuid.New(),
		QuantityKg: -1,
	})

	assert.Nil(t, lot)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestFarmService_RecordInventory_FutureHarvestDate(t *testing.T) {
	fx := createTestFarmService(t)

	lot, err := fx.service.RecordInventory(context.Background(), uuid.New(), usecase.RecordInventoryInput{
		FarmID:      uuid.New(),
		QuantityKg:  100,
		HarvestDate: time.Now().Add(48 * time.Hour),
	})

	assert.Nil(t, lot)
	assert.True(t, errors.Is(err, domainerrors.ErrFutureHarvestDate))
}

func TestFarmService_RecordInventory_NotOwner(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmID := uuid.New()

	fx.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, OwnerID: uuid.New()}, nil)

	lot, err := fx.service.RecordInventory(ctx, uuid.New(), usecase.RecordInventoryInput{
		FarmID:      farmID,
		QuantityKg:  100,
		HarvestDate: time.Now().Add(-time.Hour),
	})

	assert.Nil(t, lot)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestFarmService_AdjustInventory_Success(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()
	inventoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInventoryRepo := mockRepo.NewMockInventoryRepository(t)
			mockFarmRepo := mockRepo.NewMockFarmRepository(t)

			mockFactory.EXPECT().InventoryRepo().Return(mockInventoryRepo)
			mockFactory.EXPECT().FarmRepo().Return(mockFarmRepo)

			mockInventoryRepo.EXPECT().
				FindByIDForUpdate(ctx, inventoryID).
				Return(&entity.Inventory{ID: inventoryID, FarmID: farmID, QuantityKg: 100}, nil)
			mockFarmRepo.EXPECT().
				FindByID(ctx, farmID).
				Return(&entity.Farm{ID: farmID, OwnerID: ownerID}, nil)
			mockInventoryRepo.EXPECT().
				UpdateQuantity(ctx, inventoryID, 60.0).
				Return(nil)

			return fn(mockFactory)
		})

	lot, err := fx.service.AdjustInventory(ctx, ownerID, usecase.AdjustInventoryInput{
		InventoryID: inventoryID,
		DeltaKg:     -40,
	})

	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.InDelta(t, 60.0, lot.QuantityKg, 0.0001)
}

func TestFarmService_AdjustInventory_WouldGoNegative(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	farmID := uuid.New()
	inventoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInventoryRepo := mockRepo.NewMockInventoryRepository(t)
			mockFarmRepo := mockRepo.NewMockFarmRepository(t)

			mockFactory.EXPECT().InventoryRepo().Return(mockInventoryRepo)
			mockFactory.EXPECT().FarmRepo().Return(mockFarmRepo)

			mockInventoryRepo.EXPECT().
				FindByIDForUpdate(ctx, inventoryID).
				Return(&entity.Inventory{ID: inventoryID, FarmID: farmID, QuantityKg: 30}, nil)
			mockFarmRepo.EXPECT().
				FindByID(ctx, farmID).
				Return(&entity.Farm{ID: farmID, OwnerID: ownerID}, nil)

			return fn(mockFactory)
		})

	lot, err := fx.service.AdjustInventory(ctx, ownerID, usecase.AdjustInventoryInput{
		InventoryID: inventoryID,
		DeltaKg:     -31,
	})

	assert.Nil(t, lot)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientQuantity))
}

func TestFarmService_AdjustInventory_LotNotFound(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	inventoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInventoryRepo := mockRepo.NewMockInventoryRepository(t)

			mockFactory.EXPECT().InventoryRepo().Return(mockInventoryRepo)
			mockInventoryRepo.EXPECT().
				FindByIDForUpdate(ctx, inventoryID).
				Return(nil, repository.ErrInventoryNotFound)

			return fn(mockFactory)
		})

	lot, err := fx.service.AdjustInventory(ctx, uuid.New(), usecase.AdjustInventoryInput{
		InventoryID: inventoryID,
		DeltaKg:     10,
	})

	assert.Nil(t, lot)
	assert.True(t, errors.Is(err, domainerrors.ErrInventoryNotFound))
}

func TestFarmService_GetFarm_NotOwner(t *testing.T) {
	fx := createTestFarmService(t)

	ctx := context.Background()
	farmID := uuid.New()

	fx.farmRepo.EXPECT().FindByID(ctx, farmID).Return(&entity.Farm{ID: farmID, OwnerID: uuid.New()}, nil)

	farm, err := fx.service.GetFarm(ctx, uuid.New(), farmID)

	assert.Nil(t, farm)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
