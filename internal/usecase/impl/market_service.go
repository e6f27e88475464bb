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

// marketService implements the MarketUsecase interface. Every lifecycle
// mutation runs inside the transaction manager so status checks and writes
// observe a consistent snapshot under row locks.
type marketService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	statsRepo   repository.StatsRepository
	logger      *slog.Logger
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	StatsRepo   repository.StatsRepository
	Logger      *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		statsRepo:   params.StatsRepo,
		logger:      params.Logger,
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing drafts a new listing. Drafts are invisible to buyers until
// published.
func (srv *marketService) CreateListing(ctx context.Context, sellerID uuid.UUID, input usecase.CreateListingInput) (*entity.Listing, error) {
	srv.log(ctx).Info("Creating listing", slog.Any("sellerID", sellerID), slog.String("productType", input.ProductType))

	if input.QuantityKg <= 0 || input.PricePerKg <= 0 {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("quantity and price must be positive")
	}

	listing := &entity.Listing{
		SellerID:    sellerID,
		ProductType: input.ProductType,
		QuantityKg:  input.QuantityKg,
		PricePerKg:  input.PricePerKg,
		Description: input.Description,
		Status:      entity.ListingStatusDraft,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		srv.log(ctx).Warn("Failed to create listing", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

// PublishListing moves a draft listing to open.
func (srv *marketService) PublishListing(ctx context.Context, sellerID, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.transitionListing(ctx, sellerID, listingID, entity.ListingStatusOpen)
}

// CancelListing withdraws a draft or open listing. Cancelling an open listing
// does not touch its existing transactions; they settle or cancel on their own.
func (srv *marketService) CancelListing(ctx context.Context, sellerID, listingID uuid.UUID) (*entity.Listing, error) {
	return srv.transitionListing(ctx, sellerID, listingID, entity.ListingStatusCancelled)
}

func (srv *marketService) transitionListing(ctx context.Context, sellerID, listingID uuid.UUID, next entity.ListingStatus) (*entity.Listing, error) {
	srv.log(ctx).Info("Transitioning listing", slog.Any("listingID", listingID), slog.String("to", next.String()))

	var updated *entity.Listing
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.ListingRepo()

		listing, err := listingRepo.FindByIDForUpdate(ctx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound.WrapMessage("listing does not exist")
			}

			return errors.Wrap(err, "failed to lock listing")
		}
		if listing.SellerID != sellerID {
			return domainerrors.ErrForbidden.WrapMessage("listing belongs to another seller")
		}
		if !listing.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				"listing cannot move from " + listing.Status.String() + " to " + next.String())
		}

		if err := listingRepo.UpdateStatus(ctx, listing.ID, next); err != nil {
			return errors.Wrap(err, "failed to update listing status")
		}

		listing.Status = next
		updated = listing

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to transition listing", slog.Any("listingID", listingID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListOpenListings returns all listings currently accepting transactions.
func (srv *marketService) ListOpenListings(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.FindOpen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open listings")
	}

	return listings, nil
}

// PlaceTransaction commits buyer funds against an open listing. The listing
// row is locked before summing active transactions, so two concurrent
// placements cannot both pass the economic-bound check.
func (srv *marketService) PlaceTransaction(ctx context.Context, buyerID uuid.UUID, input usecase.PlaceTransactionInput) (*entity.Transaction, error) {
	srv.log(ctx).Info("Placing transaction", slog.Any("listingID", input.ListingID), slog.Float64("amount", input.Amount))

	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("transaction amount must be positive")
	}

	var placed *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		listing, err := repoFactory.ListingRepo().FindByIDForUpdate(ctx, input.ListingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound.WrapMessage("listing does not exist")
			}

			return errors.Wrap(err, "failed to lock listing")
		}
		if listing.Status != entity.ListingStatusOpen {
			return domainerrors.ErrListingNotOpen.WrapMessage("listing is " + listing.Status.String())
		}
		if listing.SellerID == buyerID {
			return domainerrors.ErrForbidden.WrapMessage("sellers cannot buy from their own listing")
		}

		txnRepo := repoFactory.TransactionRepo()

		committed, err := txnRepo.SumActiveByListing(ctx, listing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to sum active transactions")
		}
		if committed+input.Amount > listing.Value() {
			return domainerrors.ErrExceedsListingValue.WrapMessage("amount exceeds remaining listing value")
		}

		txn := &entity.Transaction{
			ListingID: listing.ID,
			BuyerID:   buyerID,
			Amount:    input.Amount,
			Status:    entity.TransactionStatusPending,
		}
		if err := txnRepo.Create(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		placed = txn

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to place transaction", slog.Any("listingID", input.ListingID), slog.Any("error", err))

		return nil, err
	}

	return placed, nil
}

// ConfirmTransaction lets the seller accept a pending transaction.
func (srv *marketService) ConfirmTransaction(ctx context.Context, sellerID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.transitionTransaction(ctx, transactionID, entity.TransactionStatusConfirmed, actorIsSeller(sellerID))
}

// MarkTransactionPaid settles a confirmed transaction. When the paid total
// reaches the listing's full value the listing auto-closes.
func (srv *marketService) MarkTransactionPaid(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error) {
	srv.log(ctx).Info("Marking transaction paid", slog.Any("transactionID", transactionID))

	var updated *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txnRepo := repoFactory.TransactionRepo()
		listingRepo := repoFactory.ListingRepo()

		txn, err := txnRepo.FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound.WrapMessage("transaction does not exist")
			}

			return errors.Wrap(err, "failed to lock transaction")
		}

		// Lock the listing before the transaction status flips so the
		// paid-total check races with neither placements nor other payments.
		listing, err := listingRepo.FindByIDForUpdate(ctx, txn.ListingID)
		if err != nil {
			return errors.Wrap(err, "failed to lock listing")
		}
		if txn.BuyerID != actorID && listing.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only transaction parties can settle it")
		}
		if !txn.Status.CanTransitionTo(entity.TransactionStatusPaid) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				"transaction cannot move from " + txn.Status.String() + " to paid")
		}

		if err := txnRepo.UpdateStatus(ctx, txn.ID, entity.TransactionStatusPaid); err != nil {
			return errors.Wrap(err, "failed to update transaction status")
		}
		txn.Status = entity.TransactionStatusPaid

		paidTotal, err := txnRepo.SumPaidByListing(ctx, listing.ID)
		if err != nil {
			return errors.Wrap(err, "failed to sum paid transactions")
		}
		if paidTotal >= listing.Value() && listing.Status == entity.ListingStatusOpen {
			if err := listingRepo.UpdateStatus(ctx, listing.ID, entity.ListingStatusClosed); err != nil {
				return errors.Wrap(err, "failed to close fully paid listing")
			}
		}

		updated = txn

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to mark transaction paid", slog.Any("transactionID", transactionID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// FailTransaction records a settlement failure on a confirmed transaction.
func (srv *marketService) FailTransaction(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.transitionTransaction(ctx, transactionID, entity.TransactionStatusFailed, actorIsParty(actorID))
}

// CancelTransaction withdraws a pending or confirmed transaction. Either party
// may cancel before payment; cancelling twice is a no-op.
func (srv *marketService) CancelTransaction(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error) {
	return srv.transitionTransaction(ctx, transactionID, entity.TransactionStatusCancelled, actorIsParty(actorID))
}

// transitionAuth checks whether the acting user may drive the given
// transaction's lifecycle, with the owning listing available for seller checks.
type transitionAuth func(txn *entity.Transaction, listing *entity.Listing) error

func actorIsSeller(sellerID uuid.UUID) transitionAuth {
	return func(_ *entity.Transaction, listing *entity.Listing) error {
		if listing.SellerID != sellerID {
			return domainerrors.ErrForbidden.WrapMessage("only the listing's seller can confirm")
		}

		return nil
	}
}

func actorIsParty(actorID uuid.UUID) transitionAuth {
	return func(txn *entity.Transaction, listing *entity.Listing) error {
		if txn.BuyerID != actorID && listing.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only transaction parties can perform this action")
		}

		return nil
	}
}

func (srv *marketService) transitionTransaction(ctx context.Context, transactionID uuid.UUID, next entity.TransactionStatus, authorize transitionAuth) (*entity.Transaction, error) {
	srv.log(ctx).Info("Transitioning transaction", slog.Any("transactionID", transactionID), slog.String("to", next.String()))

	var updated *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txnRepo := repoFactory.TransactionRepo()

		txn, err := txnRepo.FindByIDForUpdate(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound.WrapMessage("transaction does not exist")
			}

			return errors.Wrap(err, "failed to lock transaction")
		}

		listing, err := repoFactory.ListingRepo().FindByID(ctx, txn.ListingID)
		if err != nil {
			return errors.Wrap(err, "failed to find listing for transaction")
		}
		if err := authorize(txn, listing); err != nil {
			return err
		}
		// Re-cancelling an already cancelled transaction is a no-op.
		if next == entity.TransactionStatusCancelled && txn.Status == entity.TransactionStatusCancelled {
			updated = txn

			return nil
		}
		if !txn.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				"transaction cannot move from " + txn.Status.String() + " to " + next.String())
		}

		if err := txnRepo.UpdateStatus(ctx, txn.ID, next); err != nil {
			return errors.Wrap(err, "failed to update transaction status")
		}

		txn.Status = next
		updated = txn

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to transition transaction", slog.Any("transactionID", transactionID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// CreateLogistics books a shipment for a paid transaction. The unique index on
// transaction_id backstops the at-most-one check under concurrency.
func (srv *marketService) CreateLogistics(ctx context.Context, actorID uuid.UUID, input usecase.CreateLogisticsInput) (*entity.Logistics, error) {
	srv.log(ctx).Info("Booking logistics", slog.Any("transactionID", input.TransactionID), slog.String("carrier", input.Carrier))

	if input.Carrier == "" || input.TrackingNumber == "" {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("carrier and tracking number are required")
	}
	if input.EstimatedDelivery.Before(time.Now()) {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("estimated delivery must be in the future")
	}

	var booked *entity.Logistics
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txn, err := repoFactory.TransactionRepo().FindByID(ctx, input.TransactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrTransactionNotFound.WrapMessage("transaction does not exist")
			}

			return errors.Wrap(err, "failed to find transaction")
		}
		if txn.Status != entity.TransactionStatusPaid {
			return domainerrors.ErrTransactionNotPaid.WrapMessage("logistics require a paid transaction")
		}

		listing, err := repoFactory.ListingRepo().FindByID(ctx, txn.ListingID)
		if err != nil {
			return errors.Wrap(err, "failed to find listing for transaction")
		}
		if txn.BuyerID != actorID && listing.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only transaction parties can book logistics")
		}

		logistics := &entity.Logistics{
			TransactionID:     txn.ID,
			Status:            entity.LogisticsStatusBooked,
			Carrier:           input.Carrier,
			TrackingNumber:    input.TrackingNumber,
			EstimatedDelivery: input.EstimatedDelivery,
		}
		if err := repoFactory.LogisticsRepo().Create(ctx, logistics); err != nil {
			if errors.Is(err, repository.ErrLogisticsExists) {
				return domainerrors.ErrLogisticsAlreadyExists.WrapMessage("transaction already has a shipment")
			}

			return errors.Wrap(err, "failed to create logistics record")
		}

		booked = logistics

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to book logistics", slog.Any("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, err
	}

	return booked, nil
}

// UpdateLogisticsStatus advances a shipment. Statuses only move forward.
func (srv *marketService) UpdateLogisticsStatus(ctx context.Context, actorID uuid.UUID, input usecase.UpdateLogisticsStatusInput) (*entity.Logistics, error) {
	srv.log(ctx).Info("Updating logistics status", slog.Any("logisticsID", input.LogisticsID), slog.String("to", input.Status.String()))

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidAttributes.WrapMessage("unknown logistics status")
	}

	var updated *entity.Logistics
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		logisticsRepo := repoFactory.LogisticsRepo()

		logistics, err := logisticsRepo.FindByID(ctx, input.LogisticsID)
		if err != nil {
			if errors.Is(err, repository.ErrLogisticsNotFound) {
				return domainerrors.ErrLogisticsNotFound.WrapMessage("logistics record does not exist")
			}

			return errors.Wrap(err, "failed to find logistics record")
		}

		txn, err := repoFactory.TransactionRepo().FindByID(ctx, logistics.TransactionID)
		if err != nil {
			return errors.Wrap(err, "failed to find transaction for logistics record")
		}
		listing, err := repoFactory.ListingRepo().FindByID(ctx, txn.ListingID)
		if err != nil {
			return errors.Wrap(err, "failed to find listing for transaction")
		}
		if txn.BuyerID != actorID && listing.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only transaction parties can update the shipment")
		}

		if !logistics.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidTransition.WrapMessage(
				"shipment cannot move from " + logistics.Status.String() + " to " + input.Status.String())
		}

		if err := logisticsRepo.UpdateStatus(ctx, logistics.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update logistics status")
		}

		logistics.Status = input.Status
		updated = logistics

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update logistics status", slog.Any("logisticsID", input.LogisticsID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Dashboard returns the aggregate counts backing the user's dashboard view.
func (srv *marketService) Dashboard(ctx context.Context, userID uuid.UUID) (*repository.DashboardCounts, error) {
	counts, err := srv.statsRepo.Dashboard(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dashboard counts")
	}

	return counts, nil
}
