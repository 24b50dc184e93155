package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/redis"
)

// SetupRateLimiter registers a per-client rate limit backed by Redis. The
// limiter fails open: a Redis outage must not take the dashboard down.
func SetupRateLimiter(e *echo.Echo, limiter *redis.RateLimiter) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Health probes are exempt
			if strings.Contains(c.Request().URL.Path, "/health") {
				return next(c)
			}

			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn("Rate limiter unavailable, allowing request",
					zap.String("client_ip", c.RealIP()), zap.Error(err))
				return next(c)
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}

			return next(c)
		}
	})
}
