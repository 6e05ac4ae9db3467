package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	args := m.Called(ctx, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, txnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, txnID int64) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

func (m *MockTransactionRepository) SumExpensesByCategory(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) GetCategoryStatistics(ctx context.Context, startDate, endDate string) ([]domain.CategoryStat, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStat), args.Error(1)
}

// --- Mock BudgetRepository ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (domain.Budget, error) {
	args := m.Called(ctx, budget)
	return args.Get(0).(domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetLimits(ctx context.Context, budgetID int64, totalBudget, categoryBudget *decimal.Decimal) error {
	args := m.Called(ctx, budgetID, totalBudget, categoryBudget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock TaskRepository ---

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasksByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// --- Mock MetricRepository ---

type MockMetricRepository struct {
	mock.Mock
}

func (m *MockMetricRepository) FindMetricTypeByKey(ctx context.Context, metricKey string) (*domain.MetricType, error) {
	args := m.Called(ctx, metricKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricType), args.Error(1)
}

func (m *MockMetricRepository) FindMetricTypes(ctx context.Context) ([]domain.MetricType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetricType), args.Error(1)
}

func (m *MockMetricRepository) SaveMetricType(ctx context.Context, metricType domain.MetricType) (domain.MetricType, error) {
	args := m.Called(ctx, metricType)
	return args.Get(0).(domain.MetricType), args.Error(1)
}

func (m *MockMetricRepository) AccumulateMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error) {
	args := m.Called(ctx, userID, metricType, value, day)
	return args.Get(0).(domain.MetricEvent), args.Error(1)
}

func (m *MockMetricRepository) OverwriteMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error) {
	args := m.Called(ctx, userID, metricType, value, day)
	return args.Get(0).(domain.MetricEvent), args.Error(1)
}

func (m *MockMetricRepository) SumMetricsByDay(ctx context.Context, query portsrepo.MetricQuery) ([]domain.MetricDayTotal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MetricDayTotal), args.Error(1)
}

func (m *MockMetricRepository) SumMetricsByType(ctx context.Context, query portsrepo.MetricQuery) (map[string]int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockMetricRepository) FindMetricsOnDay(ctx context.Context, userID int64, types []string, day string) (map[string]int64, error) {
	args := m.Called(ctx, userID, types, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockMetricRepository) CompareUsers(ctx context.Context, userIDs []int64, types []string, startDate, endDate string, limit int) ([]portsrepo.UserComparisonRow, error) {
	args := m.Called(ctx, userIDs, types, startDate, endDate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.UserComparisonRow), args.Error(1)
}

func (m *MockMetricRepository) GetAllUserActivity(ctx context.Context, filter portsrepo.ActivityFilter) ([]domain.UserActivitySummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserActivitySummary), args.Error(1)
}

func (m *MockMetricRepository) CountActiveUsers(ctx context.Context, day string) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMetricRepository) SumMetricOnDay(ctx context.Context, metricType string, day string) (int64, error) {
	args := m.Called(ctx, metricType, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMetricRepository) GetDailySeries(ctx context.Context, fromDay string) ([]domain.DashboardDay, error) {
	args := m.Called(ctx, fromDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardDay), args.Error(1)
}

func (m *MockMetricRepository) GetTopUsers(ctx context.Context, fromDay string, limit int) ([]domain.DashboardRank, error) {
	args := m.Called(ctx, fromDay, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardRank), args.Error(1)
}
