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

type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepository
	projectRepo portsrepo.ProjectRepository
	userRepo    portsrepo.UserRepository
}

func NewTaskService(taskRepo portsrepo.TaskRepository, projectRepo portsrepo.ProjectRepository, userRepo portsrepo.UserRepository) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: taskRepo, projectRepo: projectRepo, userRepo: userRepo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepo.FindTasks(ctx)
}

func (s *taskService) GetTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *taskService) ListTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return s.taskRepo.FindTasksByProject(ctx, projectID)
}

func (s *taskService) ListTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.taskRepo.FindTasksByUser(ctx, userID)
}

func (s *taskService) ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status %q: %w", status, apperrors.ErrValidation)
	}
	return s.taskRepo.FindTasksByStatus(ctx, status)
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*domain.Task, error) {
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("project %d does not exist: %w", req.ProjectID, apperrors.ErrValidation)
		}
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.AssignedTo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %d does not exist: %w", req.AssignedTo, apperrors.ErrValidation)
		}
		return nil, err
	}

	status := domain.TaskStatus(req.Status)
	if req.Status == "" {
		status = domain.TaskPending
	}
	priority := domain.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = domain.PriorityMedium
	}

	task, err := s.taskRepo.SaveTask(ctx, domain.Task{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "task created", "task_id", task.ID, "project_id", task.ProjectID)
	return s.taskRepo.FindTaskByID(ctx, task.ID)
}

func (s *taskService) UpdateTask(ctx context.Context, taskID int64, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.AssignedTo != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *req.AssignedTo); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("user %d does not exist: %w", *req.AssignedTo, apperrors.ErrValidation)
			}
			return nil, err
		}
		task.AssignedTo = *req.AssignedTo
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		return nil, err
	}
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *taskService) DeleteTask(ctx context.Context, taskID int64) error {
	return s.taskRepo.DeleteTask(ctx, taskID)
}
