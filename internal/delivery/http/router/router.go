// Package router contains routing setup for the HTTP delivery.
package router

import (
	"dailyfarm/internal/delivery/http/middleware"
	"dailyfarm/internal/delivery/http/router/handler"
	"dailyfarm/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds all handlers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CropHandler    *handler.CropHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cropHandler    *handler.CropHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cropHandler:    params.CropHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/login/social", r.userHandler.SocialLogin)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Profile routes
	userGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
	}

	// Crop routes. Browsing and QR sharing are public, management is farmer-only.
	cropGroup := e.Group("/crops")
	{
		cropGroup.GET("", r.cropHandler.ListCrops)
		cropGroup.GET("/:id", r.cropHandler.GetCrop)
		cropGroup.GET("/:id/qr", r.cropHandler.GetShareQR)
		cropGroup.GET("/:id/reviews", r.reviewHandler.ListCropReviews)
	}

	farmerCropGroup := e.Group("/farmer/crops",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireUserType(entity.UserTypeFarmer),
	)
	{
		farmerCropGroup.POST("", r.cropHandler.CreateCrop)
		farmerCropGroup.GET("", r.cropHandler.ListMyCrops)
		farmerCropGroup.PATCH("/:id", r.cropHandler.UpdateCrop)
		farmerCropGroup.PUT("/:id/sensors", r.cropHandler.UpdateSensorData)
		farmerCropGroup.DELETE("/:id", r.cropHandler.DeactivateCrop)
	}

	// Cart routes (customer only).
	cartGroup := e.Group("/cart",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireUserType(entity.UserTypeCustomer),
	)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:itemID", r.cartHandler.UpdateItemQuantity)
		cartGroup.DELETE("/items/:itemID", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Order routes.
	orderGroup := e.Group("/orders", r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder,
			r.authMiddleware.RequireUserType(entity.UserTypeCustomer))
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder,
			r.authMiddleware.RequireUserType(entity.UserTypeCustomer))
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus,
			r.authMiddleware.RequireUserType(entity.UserTypeFarmer))
	}

	// Review routes.
	reviewGroup := e.Group("/reviews", r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.reviewHandler.CreateReview,
			r.authMiddleware.RequireUserType(entity.UserTypeCustomer))
		reviewGroup.GET("/mine", r.reviewHandler.ListMyReviews)
		reviewGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
	}

	// Message routes.
	messageGroup := e.Group("/messages", r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.SendMessage)
		messageGroup.GET("", r.messageHandler.ListMessages)
		messageGroup.GET("/unread/count", r.messageHandler.CountUnread)
		messageGroup.GET("/:id", r.messageHandler.GetMessage)
	}
}
