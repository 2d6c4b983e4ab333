package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/observability"
)

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			status := strconv.Itoa(c.Response().Status)

			observability.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, status).Inc()
			observability.HTTPRequestDuration.WithLabelValues(c.Request().Method, route, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
