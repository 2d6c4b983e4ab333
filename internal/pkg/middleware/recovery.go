package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/logger"
	"github.com/antarid/antar/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace and answers with a generic 500 so the connection is never dropped.
func PanicRecoveryMiddleware(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					userID := "anonymous"
					if uid, ok := c.Get("user_id").(string); ok && uid != "" {
						userID = uid
					}

					log.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					)

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
