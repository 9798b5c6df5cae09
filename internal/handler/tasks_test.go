package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daytrack/daytrack/internal/middleware"
	"github.com/daytrack/daytrack/internal/repository"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/service"
)

// In-memory stand-ins for the pgx repositories, shared by the handler
// tests in this package.

type memTasksRepo struct {
	tasks     []repository.Task
	nextID    int64
	insertErr error
}

func (m *memTasksRepo) Insert(_ context.Context, task *repository.Task) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.nextID++
	stored := *task
	stored.ID = m.nextID
	m.tasks = append([]repository.Task{stored}, m.tasks...)
	return m.nextID, nil
}

func (m *memTasksRepo) List(_ context.Context) ([]repository.Task, error) {
	if m.tasks == nil {
		return []repository.Task{}, nil
	}
	return m.tasks, nil
}

type memWaterIntakeRepo struct {
	byDate map[string]*repository.WaterIntake
	nextID int64
}

func newMemWaterIntakeRepo() *memWaterIntakeRepo {
	return &memWaterIntakeRepo{byDate: map[string]*repository.WaterIntake{}}
}

func (m *memWaterIntakeRepo) Upsert(_ context.Context, date time.Time, count int64) error {
	key := date.Format("2006-01-02")
	if existing, ok := m.byDate[key]; ok {
		existing.Count = count
		return nil
	}
	m.nextID++
	m.byDate[key] = &repository.WaterIntake{ID: m.nextID, Date: date, Count: count}
	return nil
}

func (m *memWaterIntakeRepo) GetByDate(_ context.Context, date time.Time) (*repository.WaterIntake, error) {
	row, ok := m.byDate[date.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *memWaterIntakeRepo) List(_ context.Context) ([]repository.WaterIntake, error) {
	rows := []repository.WaterIntake{}
	for id := m.nextID; id >= 1; id-- {
		for _, row := range m.byDate {
			if row.ID == id {
				rows = append(rows, *row)
			}
		}
	}
	return rows, nil
}

// setupTestServer wires a full Echo instance with the production
// middleware pipeline and the given repositories, so tests exercise
// routing, binding, validation, and error translation end to end.
func setupTestServer(t *testing.T, tasksRepo service.TasksRepository, waterRepo service.WaterIntakeRepository) *echo.Echo {
	t.Helper()

	s := &server.Server{}
	global := middleware.NewGlobalMiddlewares(s)

	tasksHandler := NewTasksHandler(s, service.NewTasksService(tasksRepo))
	waterHandler := NewWaterIntakeHandler(s, service.NewWaterIntakeService(waterRepo))

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler

	e.POST("/tasks", Handle(tasksHandler.Handler, tasksHandler.CreateTask, http.StatusCreated))
	e.GET("/tasks", Handle(tasksHandler.Handler, tasksHandler.ListTasks, http.StatusOK))
	e.POST("/water-intake", Handle(waterHandler.Handler, waterHandler.UpsertWaterIntake, http.StatusOK))
	e.GET("/water-intake", Handle(waterHandler.Handler, waterHandler.ListWaterIntake, http.StatusOK))
	e.GET("/water-intake/:date", Handle(waterHandler.Handler, waterHandler.GetWaterIntake, http.StatusOK))

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateTask(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "should create a task and return its id",
			body:           `{"type":"work","startTime":"2025-03-21 08:00:00","endTime":"2025-03-21 09:30:00","duration":5400}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "should accept a zero duration",
			body:           `{"type":"break","startTime":"2025-03-21 08:00:00","endTime":"2025-03-21 08:00:00","duration":0}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "should reject a missing field",
			body:           `{"type":"work","startTime":"2025-03-21 08:00:00","duration":5400}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MISSING_FIELDS",
		},
		{
			name:           "should reject an explicit null duration",
			body:           `{"type":"work","startTime":"2025-03-21 08:00:00","endTime":"2025-03-21 09:00:00","duration":null}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "MISSING_FIELDS",
		},
		{
			name:           "should reject an unparseable start time",
			body:           `{"type":"work","startTime":"not-a-date","endTime":"2025-03-21 09:00:00","duration":3600}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_DATE_FORMAT",
		},
		{
			name:           "should reject malformed JSON",
			body:           `{"type":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupTestServer(t, &memTasksRepo{}, newMemWaterIntakeRepo())

			rec := doJSON(e, http.MethodPost, "/tasks", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, payload["code"])
				return
			}

			assert.Equal(t, "Task created successfully", payload["message"])
			assert.Equal(t, float64(1), payload["taskId"])
		})
	}
}

func TestCreateTask_NormalizesTimestamps(t *testing.T) {
	repo := &memTasksRepo{}
	e := setupTestServer(t, repo, newMemWaterIntakeRepo())

	rec := doJSON(e, http.MethodPost, "/tasks",
		`{"type":"work","startTime":"2025-03-21T10:00:00+02:00","endTime":"2025-03-21T11:00:00+02:00","duration":3600}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.tasks, 1)
	assert.Equal(t, "2025-03-21 08:00:00", repo.tasks[0].StartTime)
	assert.Equal(t, "2025-03-21 09:00:00", repo.tasks[0].EndTime)
}

func TestCreateTask_StorageFailure(t *testing.T) {
	repo := &memTasksRepo{insertErr: errors.New("connection refused")}
	e := setupTestServer(t, repo, newMemWaterIntakeRepo())

	rec := doJSON(e, http.MethodPost, "/tasks",
		`{"type":"work","startTime":"2025-03-21 08:00:00","endTime":"2025-03-21 09:00:00","duration":3600}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", payload["code"])
	assert.NotContains(t, payload["message"], "connection refused", "driver errors must not leak to clients")
}

func TestListTasks(t *testing.T) {
	t.Run("should return an empty array when no tasks exist", func(t *testing.T) {
		e := setupTestServer(t, &memTasksRepo{}, newMemWaterIntakeRepo())

		rec := doJSON(e, http.MethodGet, "/tasks", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should return tasks newest first", func(t *testing.T) {
		e := setupTestServer(t, &memTasksRepo{}, newMemWaterIntakeRepo())

		doJSON(e, http.MethodPost, "/tasks",
			`{"type":"first","startTime":"2025-03-21 08:00:00","endTime":"2025-03-21 09:00:00","duration":3600}`)
		doJSON(e, http.MethodPost, "/tasks",
			`{"type":"second","startTime":"2025-03-21 09:00:00","endTime":"2025-03-21 10:00:00","duration":3600}`)

		rec := doJSON(e, http.MethodGet, "/tasks", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var tasks []repository.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
		require.Len(t, tasks, 2)
		assert.Equal(t, "second", tasks[0].Type)
		assert.Equal(t, "first", tasks[1].Type)
		assert.Greater(t, tasks[0].ID, tasks[1].ID)
	})
}

func TestUnknownRoute(t *testing.T) {
	e := setupTestServer(t, &memTasksRepo{}, newMemWaterIntakeRepo())

	rec := doJSON(e, http.MethodGet, "/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Route not found", payload["message"])
}
