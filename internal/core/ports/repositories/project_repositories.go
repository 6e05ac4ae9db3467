package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	// SaveProject inserts a project and returns it with its ID.
	SaveProject(ctx context.Context, project domain.Project) (domain.Project, error)

	// FindProjects retrieves all projects, newest first, creator joined.
	FindProjects(ctx context.Context) ([]domain.Project, error)

	// FindProjectByID retrieves a project by primary key.
	FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error)

	// FindProjectsByUser retrieves projects created by one user.
	FindProjectsByUser(ctx context.Context, userID int64) ([]domain.Project, error)

	// FindProjectsByStatus retrieves projects in one lifecycle stage.
	FindProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)

	// UpdateProject overwrites a project's mutable fields.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project row; tasks cascade in the store.
	DeleteProject(ctx context.Context, projectID int64) error
}
