package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/middleware"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
	"github.com/antarid/antar/services/rides"
)

// RideHandler handles HTTP requests for fare quotes and the ride lifecycle
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// QuoteFare estimates the price of a trip. The response body is the fixed
// {"success":true,"price":"12.34"} shape rather than the shared envelope;
// existing clients parse it positionally.
func (h *RideHandler) QuoteFare(c echo.Context) error {
	var req models.RidePriceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	quote, err := h.rideUC.QuoteFare(c.Request().Context(), &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return c.JSON(http.StatusOK, models.RidePriceResponse{
		Success: true,
		Price:   fmt.Sprintf("%.2f", quote.Price),
	})
}

// RequestRide creates a ride for the authenticated rider
func (h *RideHandler) RequestRide(c echo.Context) error {
	riderID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RequestRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.RequestRide(c.Request().Context(), riderID, &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", ride)
}

// ListRiderRides returns the authenticated rider's ride history
func (h *RideHandler) ListRiderRides(c echo.Context) error {
	riderID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.rideUC.ListRiderRides(c.Request().Context(), riderID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved", list)
}

// ListDriverRides returns the rides assigned to the authenticated driver
func (h *RideHandler) ListDriverRides(c echo.Context) error {
	driverID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.rideUC.ListDriverRides(c.Request().Context(), driverID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved", list)
}

// UpdateRideStatus moves a ride through its lifecycle on behalf of the
// authenticated driver
func (h *RideHandler) UpdateRideStatus(c echo.Context) error {
	driverID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.UpdateRideStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.UpdateRideStatus(c.Request().Context(), rideID, driverID, &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", ride)
}
