package middleware

import (
	"github.com/daytrack/daytrack/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components used by the HTTP server,
// so router setup receives one wired object instead of many.
type Middlewares struct {
	// Global holds the cross-cutting middleware: CORS, request logging,
	// recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides the optional New Relic middleware.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the app
// container. When New Relic is not configured, nrApp is nil and the
// tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
