package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daytrack/daytrack/internal/errs"
	"github.com/daytrack/daytrack/internal/repository"
)

type fakeTasksRepo struct {
	tasks     []repository.Task
	nextID    int64
	insertErr error
	listErr   error
}

func (f *fakeTasksRepo) Insert(_ context.Context, task *repository.Task) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.nextID++
	stored := *task
	stored.ID = f.nextID
	f.tasks = append([]repository.Task{stored}, f.tasks...)
	return f.nextID, nil
}

func (f *fakeTasksRepo) List(_ context.Context) ([]repository.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
}

func TestTasksService_CreateTask(t *testing.T) {
	tests := []struct {
		name          string
		startTime     string
		endTime       string
		expectedStart string
		expectedEnd   string
		expectedCode  string
	}{
		{
			name:          "should store normalized UTC timestamps",
			startTime:     "2025-03-21T10:00:00+02:00",
			endTime:       "2025-03-21T11:30:00+02:00",
			expectedStart: "2025-03-21 08:00:00",
			expectedEnd:   "2025-03-21 09:30:00",
		},
		{
			name:          "should keep already-normalized timestamps as-is",
			startTime:     "2025-03-21 08:00:00",
			endTime:       "2025-03-21 09:00:00",
			expectedStart: "2025-03-21 08:00:00",
			expectedEnd:   "2025-03-21 09:00:00",
		},
		{
			name:         "should reject unparseable start time",
			startTime:    "not-a-date",
			endTime:      "2025-03-21 09:00:00",
			expectedCode: errs.CodeInvalidDateFormat,
		},
		{
			name:         "should reject unparseable end time",
			startTime:    "2025-03-21 08:00:00",
			endTime:      "later",
			expectedCode: errs.CodeInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTasksRepo{}
			svc := NewTasksService(repo)

			id, err := svc.CreateTask(context.Background(), "work", tt.startTime, tt.endTime, 5400)

			if tt.expectedCode != "" {
				var httpErr *errs.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedCode, httpErr.Code)
				assert.Equal(t, 400, httpErr.Status)
				assert.Empty(t, repo.tasks, "nothing should reach the store on a parse failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), id)
			require.Len(t, repo.tasks, 1)
			assert.Equal(t, tt.expectedStart, repo.tasks[0].StartTime)
			assert.Equal(t, tt.expectedEnd, repo.tasks[0].EndTime)
			assert.Equal(t, int64(5400), repo.tasks[0].Duration)
		})
	}
}

func TestTasksService_CreateTask_ZeroDuration(t *testing.T) {
	repo := &fakeTasksRepo{}
	svc := NewTasksService(repo)

	_, err := svc.CreateTask(context.Background(), "break", "2025-03-21 08:00:00", "2025-03-21 08:00:00", 0)

	require.NoError(t, err)
	require.Len(t, repo.tasks, 1)
	assert.Equal(t, int64(0), repo.tasks[0].Duration)
}

func TestTasksService_CreateTask_RepoError(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewTasksService(&fakeTasksRepo{insertErr: storeErr})

	_, err := svc.CreateTask(context.Background(), "work", "2025-03-21 08:00:00", "2025-03-21 09:00:00", 3600)

	assert.ErrorIs(t, err, storeErr)
}

func TestTasksService_ListTasks(t *testing.T) {
	t.Run("should surface repository rows in order", func(t *testing.T) {
		repo := &fakeTasksRepo{}
		svc := NewTasksService(repo)

		_, err := svc.CreateTask(context.Background(), "first", "2025-03-21 08:00:00", "2025-03-21 09:00:00", 3600)
		require.NoError(t, err)
		_, err = svc.CreateTask(context.Background(), "second", "2025-03-21 09:00:00", "2025-03-21 10:00:00", 3600)
		require.NoError(t, err)

		tasks, err := svc.ListTasks(context.Background())

		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "second", tasks[0].Type, "newest id comes first")
		assert.Greater(t, tasks[0].ID, tasks[1].ID)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		storeErr := errors.New("timeout")
		svc := NewTasksService(&fakeTasksRepo{listErr: storeErr})

		_, err := svc.ListTasks(context.Background())

		assert.ErrorIs(t, err, storeErr)
	})
}
