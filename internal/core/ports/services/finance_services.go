package services

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// CategorySvcFacade covers category CRUD with the preset-immutability rule.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// TransactionSvcFacade covers transaction CRUD and category statistics.
type TransactionSvcFacade interface {
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txnID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, txnID int64) error

	// GetCategoryStatistics aggregates per-category totals for a range and
	// splits them by income/expense with an overall balance.
	GetCategoryStatistics(ctx context.Context, startDate, endDate string) (*domain.CategoryStatReport, error)
}

// BudgetSvcFacade covers budget limits and read-time usage derivation.
type BudgetSvcFacade interface {
	// SetBudgets upserts a month's total budget row and any per-category rows.
	SetBudgets(ctx context.Context, req dto.CreateBudgetRequest) error

	// GetBudgetsByMonth returns a month's budget rows with usage, remaining,
	// percentage and exceeded flags derived from expense transactions, plus
	// the month's overall summary.
	GetBudgetsByMonth(ctx context.Context, month string) (*dto.BudgetListData, error)

	// UpdateBudget partially updates one row's limits.
	UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) error

	// DeleteBudget removes one budget row.
	DeleteBudget(ctx context.Context, budgetID int64) error

	// GetBudgetAlerts returns rows whose derived usage has reached the
	// applicable limit.
	GetBudgetAlerts(ctx context.Context, month string) ([]domain.BudgetAlert, error)
}
