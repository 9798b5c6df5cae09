package handler

import (
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one wired object instead of many.
type Handlers struct {
	Tasks       *TasksHandler
	WaterIntake *WaterIntakeHandler
	Health      *HealthHandler
}

// NewHandlers constructs the handler container from the app container
// and the business services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Tasks:       NewTasksHandler(s, services.Tasks),
		WaterIntake: NewWaterIntakeHandler(s, services.WaterIntake),
		Health:      NewHealthHandler(s),
	}
}
