package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
	"github.com/antarid/antar/services/users"
)

// AuthHandler handles HTTP requests for registration and verification
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
	}
}

// Register returns a handler that issues a login code for the given role's flow.
// The same handler serves the rider and driver route groups.
func (h *AuthHandler) Register(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RegisterRequest
		if err := c.Bind(&req); err != nil {
			logger.Warn("Invalid request payload for registration",
				logger.Err(err),
				logger.String("role", role),
			)
			return utils.BadRequestResponse(c, "Invalid request payload")
		}

		resp, err := h.userUC.Register(c.Request().Context(), &req, role)
		if err != nil {
			return utils.FromError(c, err)
		}

		return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", resp)
	}
}

// VerifyOTP returns a handler that exchanges a phone code for a session token
func (h *AuthHandler) VerifyOTP(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.VerifyRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}

		resp, err := h.userUC.VerifyOTP(c.Request().Context(), &req, role)
		if err != nil {
			return utils.FromError(c, err)
		}

		return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
	}
}

// RequestEmailOTP returns a handler that starts the email verification flow
func (h *AuthHandler) RequestEmailOTP(role string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.EmailOTPRequest
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}

		resp, err := h.userUC.RequestEmailOTP(c.Request().Context(), &req, role)
		if err != nil {
			return utils.FromError(c, err)
		}

		return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", resp)
	}
}

// VerifyEmailOTP exchanges an envelope and code for a session token. The
// envelope already carries the role, so one handler serves both groups.
func (h *AuthHandler) VerifyEmailOTP(c echo.Context) error {
	var req models.EmailVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.VerifyEmailOTP(c.Request().Context(), &req)
	if err != nil {
		return utils.FromError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified", resp)
}
