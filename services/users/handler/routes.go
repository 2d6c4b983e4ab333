package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/database"
	"github.com/antarid/antar/internal/pkg/middleware"
	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/services/users/handler/http"
)

// Handler coordinates the HTTP handlers for the user service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
	redisClient *database.RedisClient,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes wires the rider and driver route groups. The same handlers
// serve both groups; the group decides which role the flow issues.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	session := middleware.SessionMiddleware(h.cfg.JWT)

	var redisConn *redis.Client
	if h.redisClient != nil {
		redisConn = h.redisClient.Client
	}
	otpLimiter := middleware.IPRateLimiter(h.cfg.RateLimit, redisConn)

	// Rider-facing routes
	rider := e.Group("/api/v1")
	rider.POST("/registration", h.authHandler.Register(models.RoleRider), otpLimiter)
	rider.POST("/verify-otp", h.authHandler.VerifyOTP(models.RoleRider))
	rider.POST("/email-otp-request", h.authHandler.RequestEmailOTP(models.RoleRider), otpLimiter)
	rider.PUT("/email-otp-verify", h.authHandler.VerifyEmailOTP)
	rider.GET("/me", h.userHandler.GetMe, session, middleware.RequireRole(models.RoleRider))

	// Driver-facing routes
	driver := e.Group("/api/v1/driver")
	driver.POST("/registration", h.authHandler.Register(models.RoleDriver), otpLimiter)
	driver.POST("/verify-otp", h.authHandler.VerifyOTP(models.RoleDriver))
	driver.POST("/email-otp-request", h.authHandler.RequestEmailOTP(models.RoleDriver), otpLimiter)
	driver.PUT("/email-otp-verify", h.authHandler.VerifyEmailOTP)
	driver.GET("/me", h.userHandler.GetMe, session, middleware.RequireRole(models.RoleDriver))
	driver.PUT("/beacon", h.userHandler.UpdateBeacon, session, middleware.RequireRole(models.RoleDriver))
}
