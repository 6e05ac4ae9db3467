package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetRepository persists monthly spending limits. Usage figures are not
// stored; they are derived by the service layer from transactions.
type BudgetRepository interface {
	// UpsertBudget inserts a budget row or, when a row for the same
	// (month, category) already exists, replaces its limits.
	UpsertBudget(ctx context.Context, budget domain.Budget) (domain.Budget, error)

	// FindBudgetsByMonth retrieves a month's budget rows with category names
	// joined, total row first.
	FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error)

	// FindBudgetByID retrieves a budget row by primary key.
	FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error)

	// UpdateBudgetLimits partially updates a row's limits; nil fields keep
	// their stored values.
	UpdateBudgetLimits(ctx context.Context, budgetID int64, totalBudget, categoryBudget *decimal.Decimal) error

	// DeleteBudget removes a budget row.
	DeleteBudget(ctx context.Context, budgetID int64) error
}
