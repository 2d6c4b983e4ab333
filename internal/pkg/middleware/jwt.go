package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/models"
	"github.com/antarid/antar/internal/utils"
)

// SessionMiddleware validates the bearer token and exposes the session
// identity as user_id and role on the echo context.
func SessionMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if userID, exists := claims["user_id"]; exists {
				c.Set("user_id", fmt.Sprintf("%v", userID))
			}
			if role, exists := claims["role"]; exists {
				c.Set("role", fmt.Sprintf("%v", role))
			}
		},
	})
}

// RequireRole rejects sessions whose role claim does not match.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, ok := c.Get("role").(string)
			if !ok || got != role {
				return utils.ForbiddenResponse(c, "insufficient role")
			}
			return next(c)
		}
	}
}

// UserIDFromContext extracts the authenticated user ID set by SessionMiddleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	raw, ok := c.Get("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("missing user_id in session")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id in session: %w", err)
	}

	return userID, nil
}
