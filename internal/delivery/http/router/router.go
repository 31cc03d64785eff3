// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"burgerqueen/internal/delivery/http/middleware"
	"burgerqueen/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and middleware Fx injects into the router.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	FoodHandler    *handler.FoodHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	foodHandler    *handler.FoodHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		foodHandler:    params.FoodHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session management
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Menu: reads are public, writes require an admin session.
	foodGroup := e.Group("/food")
	{
		foodGroup.GET("", r.foodHandler.List)
		foodGroup.GET("/:id", r.foodHandler.Get)

		foodGroup.POST("", r.foodHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		foodGroup.PUT("/:id", r.foodHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		foodGroup.DELETE("/:id", r.foodHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Orders scoped to the authenticated user.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.ListOwn)
	}

	// Admin panel: full order visibility and status management.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/orders", r.orderHandler.ListAll)
		adminGroup.PUT("/orders/:id", r.orderHandler.UpdateStatus)
	}

	// Card processor integration.
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.POST("/create-payment-intent", r.paymentHandler.CreateIntent)
	}
}
