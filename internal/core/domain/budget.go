package domain

import "github.com/shopspring/decimal"

// Budget is a spending limit for a month. The row with a nil CategoryID is
// the month's total budget; rows with a category carry a per-category
// limit. Usage is never stored: it is derived from expense transactions at
// read time (see services.BudgetService).
type Budget struct {
	ID             int64           `json:"id"`
	Month          string          `json:"month"`
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	CategoryID     *int64          `json:"categoryId"`
	CategoryBudget decimal.Decimal `json:"categoryBudget"`
	Timestamps

	// Joined from categories on reads.
	CategoryName *string `json:"categoryName,omitempty"`
}

// Limit returns the spending limit that applies to this row: the category
// budget for category rows, the total budget otherwise.
func (b Budget) Limit() decimal.Decimal {
	if b.CategoryID != nil {
		return b.CategoryBudget
	}
	return b.TotalBudget
}

// BudgetUsage is a budget row with derived usage figures attached.
type BudgetUsage struct {
	Budget
	UsedAmount decimal.Decimal `json:"usedAmount"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	IsExceeded bool            `json:"isExceeded"`
}

// BudgetAlert is a budget row whose derived usage has reached its limit.
type BudgetAlert struct {
	Budget
	UsedAmount      decimal.Decimal `json:"usedAmount"`
	UsagePercentage decimal.Decimal `json:"usagePercentage"`
}

// BudgetSummary aggregates a month's overall budget position.
type BudgetSummary struct {
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
}
