package service

import (
	"context"
	"fmt"

	"github.com/daytrack/daytrack/internal/errs"
	"github.com/daytrack/daytrack/internal/repository"
)

// TasksService implements the task operations: create one task row,
// list all of them.
type TasksService struct {
	repo TasksRepository
}

// NewTasksService constructs a TasksService.
func NewTasksService(repo TasksRepository) *TasksService {
	return &TasksService{repo: repo}
}

// CreateTask parses the supplied timestamps, converts them to the
// storage wire format, inserts one row, and returns the store-assigned
// task id.
//
// Field presence was already validated by the handler; this layer owns
// the InvalidDateFormat class: either timestamp failing to parse is a
// 400, before anything touches the store.
func (s *TasksService) CreateTask(ctx context.Context, taskType, startTime, endTime string, duration int64) (int64, error) {
	start, err := ParseTimestamp(startTime)
	if err != nil {
		return 0, errs.NewInvalidDateFormatError(fmt.Sprintf("startTime %q is not a valid date", startTime))
	}

	end, err := ParseTimestamp(endTime)
	if err != nil {
		return 0, errs.NewInvalidDateFormatError(fmt.Sprintf("endTime %q is not a valid date", endTime))
	}

	task := &repository.Task{
		Type:      taskType,
		StartTime: FormatTimestampForDB(start),
		EndTime:   FormatTimestampForDB(end),
		Duration:  duration,
	}

	return s.repo.Insert(ctx, task)
}

// ListTasks returns every task row, newest id first.
func (s *TasksService) ListTasks(ctx context.Context) ([]repository.Task, error) {
	return s.repo.List(ctx)
}
