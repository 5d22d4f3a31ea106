// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tiffin/internal/delivery/http/middleware"
	"tiffin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.customerHandler.SignUp)
		authGroup.POST("/login", r.customerHandler.Login)
	}

	// Customer routes that require a valid session token
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.POST("/logout", r.customerHandler.Logout)
		customerGroup.GET("/profile", r.customerHandler.GetProfile)
		customerGroup.PUT("/profile", r.customerHandler.UpdateProfile)
		customerGroup.PUT("/password", r.customerHandler.ChangePassword)
		customerGroup.GET("/sessions", r.customerHandler.Sessions)
		customerGroup.GET("/sessions/statistics", r.customerHandler.SessionStatistics)
	}
}
