// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecowave/internal/delivery/http/middleware"
	"ecowave/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	InquiryHandler *handler.InquiryHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	inquiryHandler *handler.InquiryHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		inquiryHandler: params.InquiryHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Federated login flow
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	api := e.Group("/api")

	// Public catalog reads and inquiries
	api.GET("/products", r.productHandler.Search)
	api.GET("/products/:id", r.productHandler.Get)
	api.GET("/products/seller/:email", r.productHandler.ListBySeller)
	api.POST("/inquiries", r.inquiryHandler.Submit)

	// Listing mutations and account data require a verified credential
	protected := api.Group("", r.authMiddleware.Authenticate)
	{
		protected.POST("/products", r.productHandler.Create)
		protected.PUT("/products/:id", r.productHandler.Update)
		protected.DELETE("/products/:id", r.productHandler.Delete)
		protected.POST("/products/:id/sold", r.productHandler.MarkSold)
		protected.GET("/user/profile", r.userHandler.GetProfile)
		protected.GET("/user/impact", r.userHandler.GetImpact)
	}
}
