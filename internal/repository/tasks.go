package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TasksRepository performs task table operations against the pool.
type TasksRepository struct {
	pool *pgxpool.Pool
}

// NewTasksRepository constructs a TasksRepository.
func NewTasksRepository(pool *pgxpool.Pool) *TasksRepository {
	return &TasksRepository{pool: pool}
}

// Insert stores one task row and returns the store-assigned id.
func (r *TasksRepository) Insert(ctx context.Context, task *Task) (int64, error) {
	query := `
	INSERT INTO tasks (type, start_time, end_time, duration)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query, task.Type, task.StartTime, task.EndTime, task.Duration).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// List returns all task rows, most recently inserted first (by assigned
// id, not by timestamp). An empty table yields an empty slice.
func (r *TasksRepository) List(ctx context.Context) ([]Task, error) {
	query := `
	SELECT id, type, start_time, end_time, duration
	FROM tasks
	ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Type, &t.StartTime, &t.EndTime, &t.Duration); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}
