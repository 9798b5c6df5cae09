// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack in order and maps each path to its
// handler. Route handlers are independent and stateless aside from the
// shared connection pool wired through the handler container.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/daytrack/daytrack/internal/handler"
	"github.com/daytrack/daytrack/internal/middleware"
	"github.com/daytrack/daytrack/internal/server"
)

// New builds the Echo instance: error handler, middleware in dependency
// order (request IDs before the context enhancer, the New Relic
// transaction before anything that reads trace metadata), then routes.
func New(s *server.Server, m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.Recover())
	e.Use(m.Global.RequestLogger())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
