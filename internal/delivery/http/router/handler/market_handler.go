package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"beantrade/internal/delivery/http/response"
	"beantrade/internal/domain/entity"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler holds dependencies for listing, transaction and logistics handlers.
type MarketHandler struct {
	uc     usecase.MarketUsecase
	logger *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		uc:     uc,
		logger: logger,
	}
}

type createListingRequest struct {
	ProductType string  `json:"product_type" validate:"required"`
	QuantityKg  float64 `json:"quantity_kg" validate:"required,gt=0"`
	PricePerKg  float64 `json:"price_per_kg" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// CreateListing drafts a new listing for the authenticated seller.
func (h *MarketHandler) CreateListing(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), userID, usecase.CreateListingInput{
		ProductType: req.ProductType,
		QuantityKg:  req.QuantityKg,
		PricePerKg:  req.PricePerKg,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// PublishListing opens a draft listing to buyers.
func (h *MarketHandler) PublishListing(c echo.Context) error {
	return h.transitionListing(c, h.uc.PublishListing, "Listing published successfully")
}

// CancelListing withdraws a draft or open listing.
func (h *MarketHandler) CancelListing(c echo.Context) error {
	return h.transitionListing(c, h.uc.CancelListing, "Listing cancelled successfully")
}

func (h *MarketHandler) transitionListing(c echo.Context, op func(ctx context.Context, sellerID, listingID uuid.UUID) (*entity.Listing, error), message string) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	listing, err := op(c.Request().Context(), userID, listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, message)
}

// ListOpenListings returns all listings currently accepting transactions.
func (h *MarketHandler) ListOpenListings(c echo.Context) error {
	listings, err := h.uc.ListOpenListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "Open listings retrieved successfully")
}

type placeTransactionRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// PlaceTransaction commits buyer funds against an open listing.
func (h *MarketHandler) PlaceTransaction(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing ID")
	}

	var req placeTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	txn, err := h.uc.PlaceTransaction(c.Request().Context(), userID, usecase.PlaceTransactionInput{
		ListingID: listingID,
		Amount:    req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, txn, "Transaction placed successfully")
}

// ConfirmTransaction lets the seller accept a pending transaction.
func (h *MarketHandler) ConfirmTransaction(c echo.Context) error {
	return h.transitionTransaction(c, h.uc.ConfirmTransaction, "Transaction confirmed successfully")
}

// MarkTransactionPaid settles a confirmed transaction.
func (h *MarketHandler) MarkTransactionPaid(c echo.Context) error {
	return h.transitionTransaction(c, h.uc.MarkTransactionPaid, "Transaction marked paid successfully")
}

// FailTransaction records a settlement failure.
func (h *MarketHandler) FailTransaction(c echo.Context) error {
	return h.transitionTransaction(c, h.uc.FailTransaction, "Transaction marked failed")
}

// CancelTransaction withdraws a transaction before payment.
func (h *MarketHandler) CancelTransaction(c echo.Context) error {
	return h.transitionTransaction(c, h.uc.CancelTransaction, "Transaction cancelled successfully")
}

func (h *MarketHandler) transitionTransaction(c echo.Context, op func(ctx context.Context, actorID, transactionID uuid.UUID) (*entity.Transaction, error), message string) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction ID")
	}

	txn, err := op(c.Request().Context(), userID, transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txn, message)
}

type createLogisticsRequest struct {
	Carrier           string    `json:"carrier" validate:"required"`
	TrackingNumber    string    `json:"tracking_number" validate:"required"`
	EstimatedDelivery time.Time `json:"estimated_delivery" validate:"required"`
}

// CreateLogistics books a shipment for a paid transaction.
func (h *MarketHandler) CreateLogistics(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction ID")
	}

	var req createLogisticsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logistics input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	logistics, err := h.uc.CreateLogistics(c.Request().Context(), userID, usecase.CreateLogisticsInput{
		TransactionID:     transactionID,
		Carrier:           req.Carrier,
		TrackingNumber:    req.TrackingNumber,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, logistics, "Logistics booked successfully")
}

type updateLogisticsRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateLogisticsStatus advances a shipment's status.
func (h *MarketHandler) UpdateLogisticsStatus(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	logisticsID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid logistics ID")
	}

	var req updateLogisticsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logistics input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	logistics, err := h.uc.UpdateLogisticsStatus(c.Request().Context(), userID, usecase.UpdateLogisticsStatusInput{
		LogisticsID: logisticsID,
		Status:      entity.LogisticsStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logistics, "Logistics updated successfully")
}

// Dashboard returns aggregate counts for the authenticated user.
func (h *MarketHandler) Dashboard(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	counts, err := h.uc.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "Dashboard retrieved successfully")
}
