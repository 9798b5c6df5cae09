package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/daytrack/daytrack/internal/middleware"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that load balancers and
// uptime monitors use to verify the service is alive and its
// dependencies are reachable.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared
// app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the overall status plus a database sub-check.
// 200 when everything passes, 503 when the store is unreachable.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbStart := time.Now()

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		checks["database"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}

		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(dbStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(dbStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
