package service

import (
	"github.com/daytrack/daytrack/internal/repository"
	"github.com/daytrack/daytrack/internal/server"
)

// Services is a container that groups all business services.
type Services struct {
	Tasks       *TasksService
	WaterIntake *WaterIntakeService
}

// NewServices constructs the service container from the wired
// repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Tasks:       NewTasksService(repos.Tasks),
		WaterIntake: NewWaterIntakeService(repos.WaterIntake),
	}, nil
}
