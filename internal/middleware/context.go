package middleware

import (
	"context"

	"github.com/daytrack/daytrack/internal/logger"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is the key for the request-scoped logger in both Echo
// context and the Go request context.
const LoggerKey = "logger"

// ContextEnhancer enriches each request with a request-scoped logger
// carrying correlation fields:
//   - request_id
//   - method, path, ip
//   - trace.id/span.id (when a New Relic transaction exists)
//
// The logger is stored in Echo context (for handlers) and in the Go
// request context (for code that only sees context.Context).
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns the Echo middleware that builds and stores the
// request-scoped logger. It must run after RequestID (to pick up the
// correlation ID) and after the New Relic middleware (to pick up trace
// metadata).
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, not raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Also store the logger in the request context so the
			// repository/service layers can fetch it without Echo.
			ctx := context.WithValue(c.Request().Context(), LoggerKey, &contextLogger) //nolint:staticcheck // string key kept for parity with Echo context key
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from Echo context.
// If EnhanceContext did not run, it returns a no-op logger so callers
// never crash on a nil logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
