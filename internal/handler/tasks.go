package handler

import (
	"github.com/daytrack/daytrack/internal/repository"
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate applies the struct tags on request payloads. One shared
// instance: the validator caches struct metadata internally.
var validate = validator.New()

// TasksHandler exposes the task endpoints.
type TasksHandler struct {
	Handler
	tasks *service.TasksService
}

// NewTasksHandler constructs a TasksHandler.
func NewTasksHandler(s *server.Server, tasks *service.TasksService) *TasksHandler {
	return &TasksHandler{
		Handler: NewHandler(s),
		tasks:   tasks,
	}
}

// CreateTaskRequest is the POST /tasks payload.
//
// Every field is required, but duration legitimately accepts 0, so the
// numeric field is a pointer: the required tag then rejects only
// null/absent values. min=1 on the strings rejects empty text.
type CreateTaskRequest struct {
	Type      *string `json:"type" validate:"required,min=1"`
	StartTime *string `json:"startTime" validate:"required,min=1"`
	EndTime   *string `json:"endTime" validate:"required,min=1"`
	Duration  *int64  `json:"duration" validate:"required"`
}

func (r *CreateTaskRequest) Validate() error {
	return validate.Struct(r)
}

// CreateTaskResponse acknowledges a created task.
type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"taskId"`
}

// CreateTask inserts one task row and answers 201 with the new id.
func (h *TasksHandler) CreateTask(c echo.Context, req *CreateTaskRequest) (*CreateTaskResponse, error) {
	taskID, err := h.tasks.CreateTask(c.Request().Context(), *req.Type, *req.StartTime, *req.EndTime, *req.Duration)
	if err != nil {
		return nil, err
	}

	return &CreateTaskResponse{
		Message: "Task created successfully",
		TaskID:  taskID,
	}, nil
}

// ListTasksRequest is the (empty) GET /tasks payload.
type ListTasksRequest struct{}

func (r *ListTasksRequest) Validate() error {
	return nil
}

// ListTasks answers with every task row, newest id first.
func (h *TasksHandler) ListTasks(c echo.Context, req *ListTasksRequest) ([]repository.Task, error) {
	return h.tasks.ListTasks(c.Request().Context())
}
