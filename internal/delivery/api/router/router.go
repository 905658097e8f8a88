// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/router/handler"
)

type RouterParams struct {
	fx.In

	ParentHandler       *handler.ParentHandler
	SafeZoneHandler     *handler.SafeZoneHandler
	ParentalHandler     *handler.ParentalHandler
	DeviceHandler       *handler.DeviceHandler
	StatusStreamHandler *handler.StatusStreamHandler
	AuthMiddleware      *middleware.ParentAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	parentHandler       *handler.ParentHandler
	safeZoneHandler     *handler.SafeZoneHandler
	parentalHandler     *handler.ParentalHandler
	deviceHandler       *handler.DeviceHandler
	statusStreamHandler *handler.StatusStreamHandler
	authMiddleware      *middleware.ParentAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		parentHandler:       params.ParentHandler,
		safeZoneHandler:     params.SafeZoneHandler,
		parentalHandler:     params.ParentalHandler,
		deviceHandler:       params.DeviceHandler,
		statusStreamHandler: params.StatusStreamHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Parent mode: PIN setup and sessions
	parentGroup := e.Group("/parent")
	{
		parentGroup.POST("/pin", r.parentHandler.SetPin)
		parentGroup.GET("/session", r.parentHandler.SessionStatus)
		parentGroup.POST("/session", r.parentHandler.OpenSession)
		parentGroup.DELETE("/session", r.parentHandler.CloseSession, r.authMiddleware.RequireParent)
		parentGroup.POST("/session/refresh", r.parentHandler.RefreshSession, r.authMiddleware.RequireParent)
	}

	// Monitoring is visible from the child side as well
	safeZonesGroup := e.Group("/safe-zones")
	{
		safeZonesGroup.GET("/status", r.safeZoneHandler.Status)
		safeZonesGroup.POST("/monitoring/start", r.safeZoneHandler.StartMonitoring)
		safeZonesGroup.POST("/monitoring/stop", r.safeZoneHandler.StopMonitoring)
		safeZonesGroup.GET("/activity", r.safeZoneHandler.ListActivity)
	}

	// Child device answers
	e.POST("/check-ins/:id/complete", r.parentalHandler.CompleteCheckIn)
	e.POST("/pings/:id/ack", r.parentalHandler.AcknowledgePing)

	// Everything below requires parent mode. The middleware is attached per route so
	// unknown paths still answer 404.
	parentOnly := r.authMiddleware.RequireParent

	e.GET("/safe-zones", r.safeZoneHandler.ListSafeZones, parentOnly)
	e.POST("/safe-zones", r.safeZoneHandler.AddSafeZone, parentOnly)
	e.PATCH("/safe-zones/:id", r.safeZoneHandler.UpdateSafeZone, parentOnly)
	e.POST("/safe-zones/:id/toggle", r.safeZoneHandler.ToggleSafeZone, parentOnly)
	e.DELETE("/safe-zones/:id", r.safeZoneHandler.DeleteSafeZone, parentOnly)

	settingsGroup := e.Group("/settings", parentOnly)
	{
		settingsGroup.GET("", r.parentalHandler.GetSettings)
		settingsGroup.PUT("", r.parentalHandler.SaveSettings)
		settingsGroup.POST("/contacts", r.parentalHandler.AddContact)
		settingsGroup.PUT("/contacts/:id", r.parentalHandler.UpdateContact)
		settingsGroup.DELETE("/contacts/:id", r.parentalHandler.DeleteContact)
	}

	e.GET("/dashboard", r.parentalHandler.GetDashboard, parentOnly)

	e.GET("/check-ins", r.parentalHandler.ListCheckIns, parentOnly)
	e.POST("/check-ins", r.parentalHandler.RequestCheckIn, parentOnly)
	e.GET("/pings", r.parentalHandler.ListPings, parentOnly)
	e.POST("/pings", r.parentalHandler.SendPing, parentOnly)

	e.GET("/devices/pairing-qr", r.deviceHandler.PairingQR, parentOnly)
	e.GET("/ws/status", r.statusStreamHandler.Stream, parentOnly)
}
