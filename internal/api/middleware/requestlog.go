package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// Health endpoints are polled constantly by orchestrators; logging every
// successful hit drowns out real traffic. Only the first success after a
// failure (or startup) is logged. Failures are always logged.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Repeated successful health checks
// are suppressed.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	healthy := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			fields := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if _, isHealth := healthPaths[path]; isHealth {
				if status >= http.StatusBadRequest {
					mu.Lock()
					healthy[path] = false
					mu.Unlock()
					log.Warn("request", fields...)
					return err
				}

				mu.Lock()
				alreadyHealthy := healthy[path]
				healthy[path] = true
				mu.Unlock()

				if !alreadyHealthy {
					log.Info("request", fields...)
				}
				return err
			}

			log.Info("request", fields...)
			return err
		}
	}
}
