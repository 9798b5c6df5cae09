package repository

import (
	"github.com/daytrack/daytrack/internal/server"
)

// Repositories is a container for all repository instances, wired once
// at startup and handed to the service layer.
type Repositories struct {
	Tasks       *TasksRepository
	WaterIntake *WaterIntakeRepository
}

// NewRepositories constructs the repository container from the shared
// database pool on the app container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Tasks:       NewTasksRepository(s.DB.Pool),
		WaterIntake: NewWaterIntakeRepository(s.DB.Pool),
	}
}
