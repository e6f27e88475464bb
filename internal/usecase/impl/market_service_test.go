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

// marketServiceFixtures holds all test dependencies for market service tests.
type marketServiceFixtures struct {
	service     usecase.MarketUsecase
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockListingRepository
	statsRepo   *mockRepo.MockStatsRepository
}

func createTestMarketService(t *testing.T) marketServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	statsRepo := mockRepo.NewMockStatsRepository(t)

	service := NewMarketService(MarketServiceParams{
		TxManager:   txManager,
		ListingRepo: listingRepo,
		StatsRepo:   statsRepo,
		Logger:      newDiscardLogger(),
	})

	return marketServiceFixtures{
		service:     service,
		txManager:   txManager,
		listingRepo: listingRepo,
		statsRepo:   statsRepo,
	}
}

func TestMarketService_CreateListing_Success(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := usecase.CreateListingInput{
		ProductType: "arabica green beans",
		QuantityKg:  100,
		PricePerKg:  8,
	}

	fx.listingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(ctx context.Context, listing *entity.Listing) {
			listing.ID = uuid.New()
		}).
		Return(nil)

	listing, err := fx.service.CreateListing(ctx, sellerID, input)

	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, entity.ListingStatusDraft, listing.Status)
	assert.Equal(t, sellerID, listing.SellerID)
}

func TestMarketService_CreateListing_NonPositivePrice(t *testing.T) {
	fx := createTestMarketService(t)

	listing, err := fx.service.CreateListing(context.Background(), uuid.New(), usecase.CreateListingInput{
		ProductType: "arabica green beans",
		QuantityKg:  100,
		PricePerKg:  0,
	})

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAttributes))
}

func TestMarketService_PublishListing_Success(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: sellerID, Status: entity.ListingStatusDraft}, nil)
			mockListingRepo.EXPECT().
				UpdateStatus(ctx, listingID, entity.ListingStatusOpen).
				Return(nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.PublishListing(ctx, sellerID, listingID)

	require.NoError(t, err)
	require.NotNil(t, listing)
	assert.Equal(t, entity.ListingStatusOpen, listing.Status)
}

func TestMarketService_PublishListing_NotSeller(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New(), Status: entity.ListingStatusDraft}, nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.PublishListing(ctx, uuid.New(), listingID)

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMarketService_CancelListing_AlreadyClosed(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: sellerID, Status: entity.ListingStatusClosed}, nil)

			return fn(mockFactory)
		})

	listing, err := fx.service.CancelListing(ctx, sellerID, listingID)

	assert.Nil(t, listing)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestMarketService_PlaceTransaction_Success(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()

	// Listing value is 100kg x 8 = 800; 500 already committed, 300 remains.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)

			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{
					ID:         listingID,
					SellerID:   uuid.New(),
					QuantityKg: 100,
					PricePerKg: 8,
					Status:     entity.ListingStatusOpen,
				}, nil)
			mockTxnRepo.EXPECT().SumActiveByListing(ctx, listingID).Return(500.0, nil)
			mockTxnRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, txn *entity.Transaction) {
					txn.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.PlaceTransaction(ctx, buyerID, usecase.PlaceTransactionInput{
		ListingID: listingID,
		Amount:    300,
	})

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, entity.TransactionStatusPending, txn.Status)
	assert.Equal(t, buyerID, txn.BuyerID)
}

func TestMarketService_PlaceTransaction_ExceedsListingValue(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)

			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{
					ID:         listingID,
					SellerID:   uuid.New(),
					QuantityKg: 100,
					PricePerKg: 8,
					Status:     entity.ListingStatusOpen,
				}, nil)
			mockTxnRepo.EXPECT().SumActiveByListing(ctx, listingID).Return(750.0, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.PlaceTransaction(ctx, uuid.New(), usecase.PlaceTransactionInput{
		ListingID: listingID,
		Amount:    51,
	})

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrExceedsListingValue))
}

func TestMarketService_PlaceTransaction_ListingNotOpen(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New(), Status: entity.ListingStatusDraft}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.PlaceTransaction(ctx, uuid.New(), usecase.PlaceTransactionInput{
		ListingID: listingID,
		Amount:    100,
	})

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrListingNotOpen))
}

func TestMarketService_PlaceTransaction_OwnListing(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listingID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)

			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: sellerID, Status: entity.ListingStatusOpen}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.PlaceTransaction(ctx, sellerID, usecase.PlaceTransactionInput{
		ListingID: listingID,
		Amount:    100,
	})

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMarketService_ConfirmTransaction_Success(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   uuid.New(),
					Status:    entity.TransactionStatusPending,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: sellerID}, nil)
			mockTxnRepo.EXPECT().
				UpdateStatus(ctx, transactionID, entity.TransactionStatusConfirmed).
				Return(nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.ConfirmTransaction(ctx, sellerID, transactionID)

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, entity.TransactionStatusConfirmed, txn.Status)
}

func TestMarketService_ConfirmTransaction_BuyerCannotConfirm(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusPending,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.ConfirmTransaction(ctx, buyerID, transactionID)

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestMarketService_MarkTransactionPaid_ClosesFullyPaidListing(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Amount:    800,
					Status:    entity.TransactionStatusConfirmed,
				}, nil)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{
					ID:         listingID,
					SellerID:   uuid.New(),
					QuantityKg: 100,
					PricePerKg: 8,
					Status:     entity.ListingStatusOpen,
				}, nil)
			mockTxnRepo.EXPECT().
				UpdateStatus(ctx, transactionID, entity.TransactionStatusPaid).
				Return(nil)
			mockTxnRepo.EXPECT().SumPaidByListing(ctx, listingID).Return(800.0, nil)
			mockListingRepo.EXPECT().
				UpdateStatus(ctx, listingID, entity.ListingStatusClosed).
				Return(nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.MarkTransactionPaid(ctx, buyerID, transactionID)

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, entity.TransactionStatusPaid, txn.Status)
}

func TestMarketService_MarkTransactionPaid_PartialLeavesListingOpen(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Amount:    300,
					Status:    entity.TransactionStatusConfirmed,
				}, nil)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{
					ID:         listingID,
					SellerID:   uuid.New(),
					QuantityKg: 100,
					PricePerKg: 8,
					Status:     entity.ListingStatusOpen,
				}, nil)
			mockTxnRepo.EXPECT().
				UpdateStatus(ctx, transactionID, entity.TransactionStatusPaid).
				Return(nil)
			// 300 of 800 paid; the listing stays open.
			mockTxnRepo.EXPECT().SumPaidByListing(ctx, listingID).Return(300.0, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.MarkTransactionPaid(ctx, buyerID, transactionID)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPaid, txn.Status)
}

func TestMarketService_MarkTransactionPaid_PendingRejected(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusPending,
				}, nil)
			mockListingRepo.EXPECT().
				FindByIDForUpdate(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New(), Status: entity.ListingStatusOpen}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.MarkTransactionPaid(ctx, buyerID, transactionID)

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestMarketService_CancelTransaction_PaidRejected(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusPaid,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.CancelTransaction(ctx, buyerID, transactionID)

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestMarketService_CancelTransaction_AlreadyCancelledIsNoop(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			// No UpdateStatus call is expected for an already cancelled transaction.
			mockTxnRepo.EXPECT().
				FindByIDForUpdate(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusCancelled,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	txn, err := fx.service.CancelTransaction(ctx, buyerID, transactionID)

	assert.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCancelled, txn.Status)
}

func TestMarketService_CreateLogistics_Success(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()
	input := usecase.CreateLogisticsInput{
		TransactionID:     transactionID,
		Carrier:           "DHL",
		TrackingNumber:    "JD014600003828800281",
		EstimatedDelivery: time.Now().Add(5 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)
			mockLogisticsRepo := mockRepo.NewMockLogisticsRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().LogisticsRepo().Return(mockLogisticsRepo)

			mockTxnRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusPaid,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)
			mockLogisticsRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Logistics")).
				Run(func(ctx context.Context, logistics *entity.Logistics) {
					logistics.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	logistics, err := fx.service.CreateLogistics(ctx, buyerID, input)

	require.NoError(t, err)
	require.NotNil(t, logistics)
	assert.Equal(t, entity.LogisticsStatusBooked, logistics.Status)
	assert.Equal(t, transactionID, logistics.TransactionID)
}

func TestMarketService_CreateLogistics_TransactionNotPaid(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockTxnRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(&entity.Transaction{
					ID:     transactionID,
					Status: entity.TransactionStatusConfirmed,
				}, nil)

			return fn(mockFactory)
		})

	logistics, err := fx.service.CreateLogistics(ctx, uuid.New(), usecase.CreateLogisticsInput{
		TransactionID:     transactionID,
		Carrier:           "DHL",
		TrackingNumber:    "JD014600003828800281",
		EstimatedDelivery: time.Now().Add(24 * time.Hour),
	})

	assert.Nil(t, logistics)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotPaid))
}

func TestMarketService_CreateLogistics_Duplicate(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)
			mockLogisticsRepo := mockRepo.NewMockLogisticsRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)
			mockFactory.EXPECT().LogisticsRepo().Return(mockLogisticsRepo)

			mockTxnRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(&entity.Transaction{
					ID:        transactionID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    entity.TransactionStatusPaid,
				}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)
			mockLogisticsRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Logistics")).
				Return(repository.ErrLogisticsExists)

			return fn(mockFactory)
		})

	logistics, err := fx.service.CreateLogistics(ctx, buyerID, usecase.CreateLogisticsInput{
		TransactionID:     transactionID,
		Carrier:           "DHL",
		TrackingNumber:    "JD014600003828800281",
		EstimatedDelivery: time.Now().Add(24 * time.Hour),
	})

	assert.Nil(t, logistics)
	assert.True(t, errors.Is(err, domainerrors.ErrLogisticsAlreadyExists))
}

func TestMarketService_UpdateLogisticsStatus_Forward(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()
	logisticsID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)
			mockLogisticsRepo := mockRepo.NewMockLogisticsRepository(t)

			mockFactory.EXPECT().LogisticsRepo().Return(mockLogisticsRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockLogisticsRepo.EXPECT().
				FindByID(ctx, logisticsID).
				Return(&entity.Logistics{
					ID:            logisticsID,
					TransactionID: transactionID,
					Status:        entity.LogisticsStatusBooked,
				}, nil)
			mockTxnRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(&entity.Transaction{ID: transactionID, ListingID: listingID, BuyerID: buyerID}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)
			mockLogisticsRepo.EXPECT().
				UpdateStatus(ctx, logisticsID, entity.LogisticsStatusInTransit).
				Return(nil)

			return fn(mockFactory)
		})

	logistics, err := fx.service.UpdateLogisticsStatus(ctx, buyerID, usecase.UpdateLogisticsStatusInput{
		LogisticsID: logisticsID,
		Status:      entity.LogisticsStatusInTransit,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LogisticsStatusInTransit, logistics.Status)
}

func TestMarketService_UpdateLogisticsStatus_Backward(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	listingID := uuid.New()
	transactionID := uuid.New()
	logisticsID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockListingRepo := mockRepo.NewMockListingRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)
			mockLogisticsRepo := mockRepo.NewMockLogisticsRepository(t)

			mockFactory.EXPECT().LogisticsRepo().Return(mockLogisticsRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ListingRepo().Return(mockListingRepo)

			mockLogisticsRepo.EXPECT().
				FindByID(ctx, logisticsID).
				Return(&entity.Logistics{
					ID:            logisticsID,
					TransactionID: transactionID,
					Status:        entity.LogisticsStatusDelivered,
				}, nil)
			mockTxnRepo.EXPECT().
				FindByID(ctx, transactionID).
				Return(&entity.Transaction{ID: transactionID, ListingID: listingID, BuyerID: buyerID}, nil)
			mockListingRepo.EXPECT().
				FindByID(ctx, listingID).
				Return(&entity.Listing{ID: listingID, SellerID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	logistics, err := fx.service.UpdateLogisticsStatus(ctx, buyerID, usecase.UpdateLogisticsStatusInput{
		LogisticsID: logisticsID,
		Status:      entity.LogisticsStatusInTransit,
	})

	assert.Nil(t, logistics)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestMarketService_Dashboard(t *testing.T) {
	fx := createTestMarketService(t)

	ctx := context.Background()
	userID := uuid.New()
	counts := &repository.DashboardCounts{
		Farms:              2,
		OpenListings:       1,
		ActiveTransactions: 3,
		UnreadMessages:     4,
	}

	fx.statsRepo.EXPECT().Dashboard(ctx, userID).Return(counts, nil)

	got, err := fx.service.Dashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, counts, got)
}
