package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/middleware"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
	"github.com/antarid/antar/services/users"
)

// UserHandler handles HTTP requests for profile and availability operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetMe returns the authenticated user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User profile retrieved", user)
}

// UpdateBeacon toggles the authenticated driver's availability
func (h *UserHandler) UpdateBeacon(c echo.Context) error {
	driverID, err := middleware.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BeaconRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.UpdateBeaconStatus(c.Request().Context(), driverID, &req); err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Beacon updated", nil)
}
