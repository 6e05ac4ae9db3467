package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// TaskRepository persists tasks.
type TaskRepository interface {
	// SaveTask inserts a task and returns it with its ID.
	SaveTask(ctx context.Context, task domain.Task) (domain.Task, error)

	// FindTasks retrieves all tasks, newest first, project/assignee joined.
	FindTasks(ctx context.Context) ([]domain.Task, error)

	// FindTaskByID retrieves a task by primary key.
	FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)

	// FindTasksByProject retrieves a project's tasks.
	FindTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error)

	// FindTasksByUser retrieves tasks assigned to one user.
	FindTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)

	// FindTasksByStatus retrieves tasks in one lifecycle stage.
	FindTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)

	// UpdateTask overwrites a task's mutable fields.
	UpdateTask(ctx context.Context, task domain.Task) error

	// DeleteTask removes a task row.
	DeleteTask(ctx context.Context, taskID int64) error
}
