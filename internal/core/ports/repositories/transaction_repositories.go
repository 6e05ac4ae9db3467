package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter selects one of the fixed transaction listing variants:
// Month set → all transactions of that YYYY-MM month; StartDate/EndDate
// set → inclusive date range; nothing set → everything.
type TransactionFilter struct {
	Month     string
	StartDate string
	EndDate   string
}

// TransactionRepository persists income/expense transactions.
type TransactionRepository interface {
	// SaveTransaction inserts a transaction and returns it with its ID.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error)

	// FindTransactionByID retrieves a transaction with its category joined.
	FindTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error)

	// FindTransactions retrieves transactions for the given filter variant,
	// newest first, with category details joined.
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// UpdateTransaction overwrites a transaction's mutable fields.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction row.
	DeleteTransaction(ctx context.Context, txnID int64) error

	// SumExpensesByCategory sums expense amounts for a month, keyed by
	// category ID. The month total is the sum of all values.
	SumExpensesByCategory(ctx context.Context, month string) (map[int64]decimal.Decimal, error)

	// GetCategoryStatistics aggregates per-category totals and counts for an
	// inclusive date range, covering every category even without activity.
	GetCategoryStatistics(ctx context.Context, startDate, endDate string) ([]domain.CategoryStat, error)
}
