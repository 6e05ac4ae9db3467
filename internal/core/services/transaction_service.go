package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
}

func NewTransactionService(txnRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, categoryRepo: categoryRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	return s.txnRepo.FindTransactions(ctx, filter)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, txnID)
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
	}

	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %d does not exist: %w", req.CategoryID, apperrors.ErrValidation)
		}
		return nil, err
	}

	txn, err := s.txnRepo.SaveTransaction(ctx, domain.Transaction{
		Amount:     req.Amount,
		Type:       domain.TransactionType(req.Type),
		CategoryID: req.CategoryID,
		Date:       req.Date,
		Note:       req.Note,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "transaction created", "transaction_id", txn.ID, "type", txn.Type, "amount", txn.Amount.String())
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, txnID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("category %d does not exist: %w", *req.CategoryID, apperrors.ErrValidation)
			}
			return nil, err
		}
		txn.CategoryID = *req.CategoryID
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionByID(ctx, txnID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, txnID int64) error {
	return s.txnRepo.DeleteTransaction(ctx, txnID)
}

func (s *transactionService) GetCategoryStatistics(ctx context.Context, startDate, endDate string) (*domain.CategoryStatReport, error) {
	// Default to the current month when no range is given.
	if startDate == "" || endDate == "" {
		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		startDate = monthStart.Format("2006-01-02")
		endDate = monthStart.AddDate(0, 1, -1).Format("2006-01-02")
	}

	stats, err := s.txnRepo.GetCategoryStatistics(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &domain.CategoryStatReport{
		Categories: stats,
		Income:     []domain.CategoryStat{},
		Expense:    []domain.CategoryStat{},
	}
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, stat := range stats {
		switch stat.Type {
		case domain.CategoryIncome:
			report.Income = append(report.Income, stat)
			totalIncome = totalIncome.Add(stat.TotalAmount)
		case domain.CategoryExpense:
			report.Expense = append(report.Expense, stat)
			totalExpense = totalExpense.Add(stat.TotalAmount)
		}
	}
	report.Summary = domain.CategoryStatSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
	}
	return report, nil
}
