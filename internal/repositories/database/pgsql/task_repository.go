package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
)

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

const taskColumns = `
	t.id, t.name, t.description, t.project_id, t.assigned_to, t.status,
	t.priority, t.due_date, t.created_at, t.updated_at, p.name, u.username
`

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	query := `
        INSERT INTO tasks (name, description, project_id, assigned_to, status, priority, due_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		task.Name,
		task.Description,
		task.ProjectID,
		task.AssignedTo,
		task.Status,
		task.Priority,
		task.DueDate,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assigned_to
		ORDER BY t.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assigned_to
		WHERE t.id = $1;
	`
	var task domain.Task
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.ProjectID,
		&task.AssignedTo,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.ProjectName,
		&task.AssignedUserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %d: %w", taskID, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) FindTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assigned_to
		WHERE t.project_id = $1
		ORDER BY t.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by project: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgxTaskRepository) FindTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assigned_to
		WHERE t.assigned_to = $1
		ORDER BY t.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by user: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgxTaskRepository) FindTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assigned_to
		WHERE t.status = $1
		ORDER BY t.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks by status: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
        UPDATE tasks
        SET name = $1, description = $2, project_id = $3, assigned_to = $4,
            status = $5, priority = $6, due_date = $7, updated_at = NOW()
        WHERE id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		task.Name,
		task.Description,
		task.ProjectID,
		task.AssignedTo,
		task.Status,
		task.Priority,
		task.DueDate,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update task query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("task not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(
			&task.ID,
			&task.Name,
			&task.Description,
			&task.ProjectID,
			&task.AssignedTo,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
			&task.ProjectName,
			&task.AssignedUserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}
