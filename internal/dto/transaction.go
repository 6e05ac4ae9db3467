package dto

import "github.com/shopspring/decimal"

// CreateTransactionRequest carries a new transaction. Amount positivity is
// validated in the service so the caller gets the documented message.
type CreateTransactionRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Type       string          `json:"type" binding:"required,oneof=income expense"`
	CategoryID int64           `json:"categoryId" binding:"required"`
	Date       string          `json:"date" binding:"required,datestring"`
	Note       string          `json:"note"`
}

// UpdateTransactionRequest defines partial transaction updates.
type UpdateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Type       *string          `json:"type" binding:"omitempty,oneof=income expense"`
	CategoryID *int64           `json:"categoryId"`
	Date       *string          `json:"date" binding:"omitempty,datestring"`
	Note       *string          `json:"note"`
}

// ListTransactionsParams selects a transaction listing variant: by
// year+month, by date range, or unfiltered.
type ListTransactionsParams struct {
	Year      int    `form:"year"`
	Month     int    `form:"month"`
	StartDate string `form:"startDate" binding:"omitempty,datestring"`
	EndDate   string `form:"endDate" binding:"omitempty,datestring"`
}

// StatisticsParams selects the range for category statistics.
type StatisticsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datestring"`
	EndDate   string `form:"endDate" binding:"omitempty,datestring"`
}
