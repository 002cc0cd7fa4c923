package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are hit by probes every few seconds; repeat successes are
// suppressed so they do not drown out real traffic. Failures and the
// first success after a failure are always logged.
var healthPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu          sync.Mutex
		lastHealthy = map[string]bool{}
	)

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

			if healthPaths[path] {
				healthy := status < 400
				mu.Lock()
				wasHealthy := lastHealthy[path]
				lastHealthy[path] = healthy
				mu.Unlock()

				switch {
				case !healthy:
					log.Warn("request", fields...)
				case !wasHealthy:
					log.Info("request", fields...)
				}
				return err
			}

			log.Info("request", fields...)
			return err
		}
	}
}
