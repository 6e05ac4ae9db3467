package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	userRepo    portsrepo.UserRepository
}

func NewProjectService(projectRepo portsrepo.ProjectRepository, userRepo portsrepo.UserRepository) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.FindProjects(ctx)
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjectsByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	return s.projectRepo.FindProjectsByUser(ctx, userID)
}

func (s *projectService) ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status %q: %w", status, apperrors.ErrValidation)
	}
	return s.projectRepo.FindProjectsByStatus(ctx, status)
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	if _, err := s.userRepo.FindUserByID(ctx, req.CreatedBy); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %d does not exist: %w", req.CreatedBy, apperrors.ErrValidation)
		}
		return nil, err
	}

	status := domain.ProjectStatus(req.Status)
	if req.Status == "" {
		status = domain.ProjectPlanning
	}

	project, err := s.projectRepo.SaveProject(ctx, domain.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "project created", "project_id", project.ID, "name", project.Name)
	return s.projectRepo.FindProjectByID(ctx, project.ID)
}

func (s *projectService) UpdateProject(ctx context.Context, projectID int64, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, projectID int64) error {
	return s.projectRepo.DeleteProject(ctx, projectID)
}
