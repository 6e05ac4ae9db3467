package services

import (
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, repos.CategoryRepo)
	container.Project = NewProjectService(repos.ProjectRepo, repos.UserRepo)
	container.Task = NewTaskService(repos.TaskRepo, repos.ProjectRepo, repos.UserRepo)
	container.Metrics = NewMetricsService(repos.MetricRepo, repos.UserRepo)

	return container
}
