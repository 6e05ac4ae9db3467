package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single income or expense record. Date is a plain
// YYYY-MM-DD day string; month membership is decided by string prefix,
// which keeps bucketing identical across store and application code.
type Transaction struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	CategoryID int64           `json:"categoryId"`
	Date       string          `json:"date"`
	Note       string          `json:"note"`
	Timestamps

	// Joined from categories on reads.
	CategoryName  string `json:"categoryName,omitempty"`
	CategoryIcon  string `json:"categoryIcon,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
}
