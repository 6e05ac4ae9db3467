package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepository
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
	BudgetRepo      BudgetRepository
	ProjectRepo     ProjectRepository
	TaskRepo        TaskRepository
	MetricRepo      MetricRepository
}
