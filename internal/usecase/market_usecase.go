// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"beantrade/internal/domain/entity"
	"beantrade/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateListingInput defines the data required to draft a listing.
type CreateListingInput struct {
	ProductType string
	QuantityKg  float64
	PricePerKg  float64
	Description string
}

// PlaceTransactionInput defines the data required to commit funds against a listing.
type PlaceTransactionInput struct {
	ListingID uuid.UUID
	Amount    float64
}

// CreateLogisticsInput defines the data required to book a shipment for a paid
// transaction.
type CreateLogisticsInput struct {
	TransactionID     uuid.UUID
	Carrier           string
	TrackingNumber    string
	EstimatedDelivery time.Time
}

// UpdateLogisticsStatusInput defines the data required to advance a shipment.
type UpdateLogisticsStatusInput struct {
	LogisticsID uuid.UUID
	Status      entity.LogisticsStatus
}

// MarketUsecase defines the interface for the listing, transaction and
// logistics lifecycle. Seller-only operations verify the actor owns the
// listing; buyer-only operations verify the actor placed the transaction.
type MarketUsecase interface {
	// Listing lifecycle.
	CreateListing(ctx context.Context, sellerID uuid.UUID, input CreateListingInput) (*entity.Listing, error)
	PublishListing(ctx context.Context, sellerID, listingID uuid.UUID) (*entity.Listing, error)
	CancelListing(ctx context.Context, sellerID, listingID uuid.UUID) (*entity.Listing, error)
	ListOpenListings(ctx context.Context) ([]*entity.Listing, error)

	// Transaction lifecycle.
	PlaceTransaction(ctx context.Context, buyerID uuid.UUID, input PlaceTransactionInput) (*entity.Transaction, error)
	ConfirmTransaction(ctx context.Context, sellerID, transactionID uuid.UUID) (*entity.Transaction, error)
	MarkTransactionPaid(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error)
	FailTransaction(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error)
	CancelTransaction(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error)

	// Logistics.
	CreateLogistics(ctx context.Context, actorID uuid.UUID, input CreateLogisticsInput) (*entity.Logistics, error)
	UpdateLogisticsStatus(ctx context.Context, actorID uuid.UUID, input UpdateLogisticsStatusInput) (*entity.Logistics, error)

	// Dashboard aggregates counts across the actor's marketplace activity.
	Dashboard(ctx context.Context, userID uuid.UUID) (*repository.DashboardCounts, error)
}
