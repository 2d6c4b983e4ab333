package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/middleware"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/services/rides/handler/http"
)

// Handler coordinates the HTTP handlers for the ride service
type Handler struct {
	rideHandler *http.RideHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(rideHandler *http.RideHandler, cfg *models.Config) *Handler {
	return &Handler{
		rideHandler: rideHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes wires the rider and driver route groups. Every ride route
// requires a session; the group decides which role may call it.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	session := middleware.SessionMiddleware(h.cfg.JWT)

	// Rider-facing routes
	rider := e.Group("/api/v1", session, middleware.RequireRole(models.RoleRider))
	rider.GET("/get-rides", h.rideHandler.ListRiderRides)
	rider.POST("/ride-price", h.rideHandler.QuoteFare)
	rider.POST("/rides", h.rideHandler.RequestRide)

	// Driver-facing routes
	driver := e.Group("/api/v1/driver", session, middleware.RequireRole(models.RoleDriver))
	driver.GET("/rides", h.rideHandler.ListDriverRides)
	driver.PUT("/rides/:id/status", h.rideHandler.UpdateRideStatus)
}
