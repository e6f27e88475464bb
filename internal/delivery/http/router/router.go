// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beantrade/internal/delivery/http/middleware"
	"beantrade/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	FarmHandler      *handler.FarmHandler
	MarketHandler    *handler.MarketHandler
	MessageHandler   *handler.MessageHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	farmHandler      *handler.FarmHandler
	marketHandler    *handler.MarketHandler
	messageHandler   *handler.MessageHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		farmHandler:      params.FarmHandler,
		marketHandler:    params.MarketHandler,
		messageHandler:   params.MessageHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("/dashboard", r.marketHandler.Dashboard)
	}

	// Farm routes require authentication and the "farmer" role.
	farmGroup := e.Group("/farms")
	farmGroup.Use(r.authMiddleware.Authenticate)
	farmGroup.Use(r.authMiddleware.RequireRole("farmer"))
	{
		farmGroup.POST("", r.farmHandler.CreateFarm)
		farmGroup.GET("", r.farmHandler.ListFarms)
		farmGroup.GET("/:id", r.farmHandler.GetFarm)
		farmGroup.POST("/:id/inventory", r.farmHandler.RecordInventory)
	}

	inventoryGroup := e.Group("/inventory")
	inventoryGroup.Use(r.authMiddleware.Authenticate)
	inventoryGroup.Use(r.authMiddleware.RequireRole("farmer"))
	{
		inventoryGroup.PATCH("/:id", r.farmHandler.AdjustInventory)
	}

	// Marketplace routes. Listing mutations are seller-side; placing
	// transactions is buyer-side; settlement and logistics are open to both
	// parties with per-operation checks in the use case.
	listingGroup := e.Group("/listings")
	listingGroup.Use(r.authMiddleware.Authenticate)
	{
		listingGroup.GET("", r.marketHandler.ListOpenListings)
		listingGroup.POST("", r.marketHandler.CreateListing)
		listingGroup.POST("/:id/publish", r.marketHandler.PublishListing)
		listingGroup.POST("/:id/cancel", r.marketHandler.CancelListing)
		listingGroup.POST("/:id/transactions", r.marketHandler.PlaceTransaction)
	}

	transactionGroup := e.Group("/transactions")
	transactionGroup.Use(r.authMiddleware.Authenticate)
	{
		transactionGroup.POST("/:id/confirm", r.marketHandler.ConfirmTransaction)
		transactionGroup.POST("/:id/pay", r.marketHandler.MarkTransactionPaid)
		transactionGroup.POST("/:id/fail", r.marketHandler.FailTransaction)
		transactionGroup.POST("/:id/cancel", r.marketHandler.CancelTransaction)
		transactionGroup.POST("/:id/logistics", r.marketHandler.CreateLogistics)
	}

	logisticsGroup := e.Group("/logistics")
	logisticsGroup.Use(r.authMiddleware.Authenticate)
	{
		logisticsGroup.PATCH("/:id", r.marketHandler.UpdateLogisticsStatus)
	}

	// Messaging routes
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.SendMessage)
		messageGroup.POST("/:id/read", r.messageHandler.MarkRead)
		messageGroup.GET("/conversation/:userID", r.messageHandler.ListConversation)
	}
}
