// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	OrderHandler     *handler.OrderHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	catalogHandler   *handler.CatalogHandler
	cartHandler      *handler.CartHandler
	orderHandler     *handler.OrderHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		catalogHandler:   params.CatalogHandler,
		cartHandler:      params.CartHandler,
		orderHandler:     params.OrderHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
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
		authGroup.POST("/admin/login", r.userHandler.AdminLogin)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}
	authedGroup := e.Group("/auth")
	authedGroup.Use(r.authMiddleware.Authenticate)
	{
		authedGroup.POST("/logout", r.userHandler.Logout)
		authedGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Catalog routes: public reads, admin writes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/latest", r.catalogHandler.LatestProducts)
		productGroup.GET("/sections/:section", r.catalogHandler.TopBySection)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
	}
	productAdminGroup := e.Group("/products")
	productAdminGroup.Use(r.authMiddleware.Authenticate)
	productAdminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		productAdminGroup.POST("", r.catalogHandler.AddProduct)
		productAdminGroup.PUT("/:id", r.catalogHandler.UpdateProduct)
	}
	commentGroup := e.Group("/products")
	commentGroup.Use(r.authMiddleware.Authenticate)
	{
		commentGroup.POST("/:id/comments", r.catalogHandler.AddComment)
	}

	// Cart routes: shoppers only, the cart is embedded in the user account
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	cartGroup.Use(r.authMiddleware.RequireRole(entity.RoleUser))
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder, r.authMiddleware.RequireRole(entity.RoleUser))
		orderGroup.GET("/me", r.orderHandler.ListMyOrders, r.authMiddleware.RequireRole(entity.RoleUser))
		orderGroup.GET("/assigned", r.orderHandler.ListAssignedOrders, r.authMiddleware.RequireRole(entity.RoleAgent))
		orderGroup.GET("", r.orderHandler.ListOrders, r.authMiddleware.RequireRole(entity.RoleAdmin))
		orderGroup.GET("/:id", r.orderHandler.GetOrder, r.authMiddleware.RequireAnyRole(entity.RoleAdmin, entity.RoleAgent))
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus, r.authMiddleware.RequireRole(entity.RoleAdmin))
		orderGroup.POST("/:id/assign", r.orderHandler.AssignAgent, r.authMiddleware.RequireRole(entity.RoleAdmin))
		orderGroup.GET("/:id/handoff", r.orderHandler.HandoffQR, r.authMiddleware.RequireAnyRole(entity.RoleAdmin, entity.RoleAgent))
	}

	// Admin dashboard aggregations
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	dashboardGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		dashboardGroup.GET("/brand-stock", r.dashboardHandler.BrandStock)
		dashboardGroup.GET("/category-price", r.dashboardHandler.AveragePricePerCategory)
		dashboardGroup.GET("/stock-status", r.dashboardHandler.StockStatus)
		dashboardGroup.GET("/orders-by-status", r.dashboardHandler.OrdersByStatus)
		dashboardGroup.GET("/orders-by-location", r.dashboardHandler.OrdersByLocation)
		dashboardGroup.GET("/top-selling", r.dashboardHandler.TopSellingProducts)
	}
}
