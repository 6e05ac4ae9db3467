package services

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// ProjectSvcFacade covers project CRUD and the filtered listings.
type ProjectSvcFacade interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)
	ListProjectsByUser(ctx context.Context, userID int64) ([]domain.Project, error)
	ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
}

// TaskSvcFacade covers task CRUD and the filtered listings.
type TaskSvcFacade interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}
