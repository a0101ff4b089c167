// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	PreferenceHandler   *handler.PreferenceHandler
	ProfessionalHandler *handler.ProfessionalHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	preferenceHandler   *handler.PreferenceHandler
	professionalHandler *handler.ProfessionalHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		preferenceHandler:   params.PreferenceHandler,
		professionalHandler: params.ProfessionalHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything under /profile acts on the authenticated caller.
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.DELETE("", r.profileHandler.DeleteProfile)

		profileGroup.GET("/preferences", r.preferenceHandler.GetPreferences)
		profileGroup.PUT("/preferences", r.preferenceHandler.UpdatePreferences)

		profileGroup.GET("/professional", r.professionalHandler.GetProfessionalInfo)
		profileGroup.PUT("/professional", r.professionalHandler.UpdateProfessionalInfo)
	}
}
