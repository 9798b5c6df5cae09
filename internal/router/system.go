package router

import (
	"github.com/daytrack/daytrack/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, used by load balancers and monitors.
	r.GET("/status", h.Health.CheckHealth)
}
