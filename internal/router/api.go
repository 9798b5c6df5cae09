package router

import (
	"net/http"

	"github.com/daytrack/daytrack/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes maps the business endpoints. Every route is a
// one-to-one mapping from verb+path to a single store statement.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/tasks", handler.Handle(h.Tasks.Handler, h.Tasks.CreateTask, http.StatusCreated))
	r.GET("/tasks", handler.Handle(h.Tasks.Handler, h.Tasks.ListTasks, http.StatusOK))

	r.POST("/water-intake", handler.Handle(h.WaterIntake.Handler, h.WaterIntake.UpsertWaterIntake, http.StatusOK))
	r.GET("/water-intake/:date", handler.Handle(h.WaterIntake.Handler, h.WaterIntake.GetWaterIntake, http.StatusOK))
	r.GET("/water-intake", handler.Handle(h.WaterIntake.Handler, h.WaterIntake.ListWaterIntake, http.StatusOK))
}
