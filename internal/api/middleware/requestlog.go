// Package middleware provides Echo middleware for repair-cost.
package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// probePaths are polled by orchestrators. Repeated successes on them are
// logged once; failures are always logged.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// probeState remembers whether the last probe on each path succeeded.
type probeState struct {
	mu sync.Mutex
	ok map[string]bool
}

// shouldLog records the outcome and reports whether it is worth a log line.
func (p *probeState) shouldLog(path string, success bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev, seen := p.ok[path]
	p.ok[path] = success
	return !success || !seen || !prev
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Server errors are logged at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	probes := &probeState{ok: make(map[string]bool)}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				// Let Echo write the error so the logged status is final.
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status

			if _, probe := probePaths[path]; probe {
				success := status >= http.StatusOK && status < http.StatusMultipleChoices
				if !probes.shouldLog(path, success) {
					return err
				}
			}

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"route", c.Path(),
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return err
		}
	}
}

// RequestID returns the request ID assigned by RequestLog, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
