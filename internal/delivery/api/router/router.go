// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ApplicationHandler  *handler.ApplicationHandler
	AdminHandler        *handler.AdminHandler
	NotificationHandler *handler.NotificationHandler
	RecordHandler       *handler.RecordHandler
	UploadHandler       *handler.UploadHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	applicationHandler  *handler.ApplicationHandler
	adminHandler        *handler.AdminHandler
	notificationHandler *handler.NotificationHandler
	recordHandler       *handler.RecordHandler
	uploadHandler       *handler.UploadHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		applicationHandler:  params.ApplicationHandler,
		adminHandler:        params.AdminHandler,
		notificationHandler: params.NotificationHandler,
		recordHandler:       params.RecordHandler,
		uploadHandler:       params.UploadHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, throttled per client IP
	authGroup := e.Group("/auth")
	authGroup.Use(middleware.NewRateLimiter(r.config.RateLimit))
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/federated", r.authHandler.Federated)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)
		authGroup.POST("/verification", r.authHandler.ResendVerification)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.GET("/stream", r.profileHandler.StreamProfile)
	}

	applicationsGroup := apiV1.Group("/applications")
	{
		applicationsGroup.POST("/:type", r.applicationHandler.Submit)
		applicationsGroup.GET("/:type/me", r.applicationHandler.GetMine)
		applicationsGroup.GET("/:type/me/stream", r.applicationHandler.StreamMine)
	}

	apiV1.POST("/uploads", r.uploadHandler.Upload)

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Generic collections, access checked per role by the document usecase
	recordsGroup := apiV1.Group("/records")
	{
		recordsGroup.GET("/:collection", r.recordHandler.Query)
		recordsGroup.POST("/:collection", r.recordHandler.Create)
		recordsGroup.GET("/:collection/:id", r.recordHandler.Get)
		recordsGroup.PATCH("/:collection/:id", r.recordHandler.Update)
		recordsGroup.DELETE("/:collection/:id", r.recordHandler.Delete)
	}

	// Admin routes
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/session", r.adminHandler.OpenSession)
		adminGroup.DELETE("/session", r.adminHandler.CloseSession)

		adminGroup.POST("/applications/reconcile", r.adminHandler.Reconcile)
		adminGroup.GET("/applications/:type", r.adminHandler.ListApplications)
		adminGroup.PUT("/applications/:type/:userId/status", r.adminHandler.SetApplicationStatus)

		adminGroup.GET("/notifications", r.notificationHandler.List)
		adminGroup.GET("/notifications/stream", r.notificationHandler.Stream)
		adminGroup.POST("/notifications/read-all", r.notificationHandler.MarkAllAsRead)
		adminGroup.POST("/notifications/:id/read", r.notificationHandler.MarkAsRead)
		adminGroup.DELETE("/notifications/:id", r.notificationHandler.Remove)
		adminGroup.DELETE("/notifications", r.notificationHandler.ClearAll)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/role", r.adminHandler.SetUserRole)
		adminGroup.PUT("/users/:id/status", r.adminHandler.SetUserStatus)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
	}
}
