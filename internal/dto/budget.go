package dto

import (
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryBudgetInput is one per-category limit inside a budget upsert.
type CategoryBudgetInput struct {
	CategoryID int64           `json:"categoryId" binding:"required"`
	Budget     decimal.Decimal `json:"budget"`
}

// CreateBudgetRequest upserts a month's total budget and any per-category
// limits in one call.
type CreateBudgetRequest struct {
	Month           string                `json:"month" binding:"required,yyyymm"`
	TotalBudget     *decimal.Decimal      `json:"totalBudget"`
	CategoryBudgets []CategoryBudgetInput `json:"categoryBudgets"`
}

// UpdateBudgetRequest partially updates one budget row's limits.
type UpdateBudgetRequest struct {
	TotalBudget    *decimal.Decimal `json:"totalBudget"`
	CategoryBudget *decimal.Decimal `json:"categoryBudget"`
}

// BudgetListData is the monthly budget payload: rows with derived usage
// plus the month's overall summary.
type BudgetListData struct {
	Budgets []domain.BudgetUsage `json:"budgets"`
	Summary domain.BudgetSummary `json:"summary"`
}
