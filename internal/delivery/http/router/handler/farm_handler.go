package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beantrade/internal/delivery/http/response"
	"beantrade/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FarmHandler holds dependencies for farm and inventory handlers.
type FarmHandler struct {
	uc     usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler, injected by Fx.
func NewFarmHandler(uc usecase.FarmUsecase, logger *slog.Logger) *FarmHandler {
	return &FarmHandler{
		uc:     uc,
		logger: logger,
	}
}

type createFarmRequest struct {
	Name          string  `json:"name" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	SizeHectares  float64 `json:"size_hectares" validate:"required,gt=0"`
	CoffeeType    string  `json:"coffee_type" validate:"required"`
	Certification string  `json:"certification"`
}

// CreateFarm handles the farm registration request.
func (h *FarmHandler) CreateFarm(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	farm, err := h.uc.CreateFarm(c.Request().Context(), userID, usecase.CreateFarmInput{
		Name:          req.Name,
		Location:      req.Location,
		SizeHectares:  req.SizeHectares,
		CoffeeType:    req.CoffeeType,
		Certification: req.Certification,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, farm, "Farm created successfully")
}

// ListFarms returns all farms owned by the authenticated user.
func (h *FarmHandler) ListFarms(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	farms, err := h.uc.ListFarms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farms, "Farms retrieved successfully")
}

// GetFarm returns a single farm owned by the authenticated user.
func (h *FarmHandler) GetFarm(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid farm ID")
	}

	farm, err := h.uc.GetFarm(c.Request().Context(), userID, farmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farm, "Farm retrieved successfully")
}

type recordInventoryRequest struct {
	QuantityKg   float64   `json:"quantity_kg" validate:"gte=0"`
	QualityGrade string    `json:"quality_grade" validate:"required"`
	HarvestDate  time.Time `json:"harvest_date" validate:"required"`
}

// RecordInventory handles recording a new harvest lot on a farm.
func (h *FarmHandler) RecordInventory(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid farm ID")
	}

	var req recordInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lot, err := h.uc.RecordInventory(c.Request().Context(), userID, usecase.RecordInventoryInput{
		FarmID:       farmID,
		QuantityKg:   req.QuantityKg,
		QualityGrade: req.QualityGrade,
		HarvestDate:  req.HarvestDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lot, "Inventory lot recorded successfully")
}

type adjustInventoryRequest struct {
	DeltaKg float64 `json:"delta_kg" validate:"required"`
}

// AdjustInventory applies a signed quantity delta to an inventory lot.
func (h *FarmHandler) AdjustInventory(c echo.Context) error {
	userID, ok := actorID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	inventoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid inventory ID")
	}

	var req adjustInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	lot, err := h.uc.AdjustInventory(c.Request().Context(), userID, usecase.AdjustInventoryInput{
		InventoryID: inventoryID,
		DeltaKg:     req.DeltaKg,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lot, "Inventory adjusted successfully")
}
