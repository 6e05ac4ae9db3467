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

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{db: db}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

const projectColumns = `
	p.id, p.name, p.description, p.created_by, p.start_date, p.end_date,
	p.status, p.created_at, p.updated_at, u.username
`

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	query := `
        INSERT INTO projects (name, description, created_by, start_date, end_date, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.CreatedBy,
		project.StartDate,
		project.EndDate,
		project.Status,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

func (r *PgxProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN users u ON u.id = p.created_by
		ORDER BY p.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN users u ON u.id = p.created_by
		WHERE p.id = $1;
	`
	var project domain.Project
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.CreatedBy,
		&project.StartDate,
		&project.EndDate,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.CreatorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %d: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) FindProjectsByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN users u ON u.id = p.created_by
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by user: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *PgxProjectRepository) FindProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN users u ON u.id = p.created_by
		WHERE p.status = $1
		ORDER BY p.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by status: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
        UPDATE projects
        SET name = $1, description = $2, start_date = $3, end_date = $4,
            status = $5, updated_at = NOW()
        WHERE id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		project.Name,
		project.Description,
		project.StartDate,
		project.EndDate,
		project.Status,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update project query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	query := `DELETE FROM projects WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.CreatedBy,
			&project.StartDate,
			&project.EndDate,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
			&project.CreatorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, nil
}
