package service

import (
	"context"
	"time"

	"github.com/daytrack/daytrack/internal/repository"
)

// TasksRepository is the task persistence surface the service layer
// depends on. The pgx implementation lives in the repository package;
// tests substitute fakes.
type TasksRepository interface {
	Insert(ctx context.Context, task *repository.Task) (int64, error)
	List(ctx context.Context) ([]repository.Task, error)
}

// WaterIntakeRepository is the water intake persistence surface.
type WaterIntakeRepository interface {
	Upsert(ctx context.Context, date time.Time, count int64) error
	GetByDate(ctx context.Context, date time.Time) (*repository.WaterIntake, error)
	List(ctx context.Context) ([]repository.WaterIntake, error)
}
