package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

var oneHundred = decimal.NewFromInt(100)

type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepository
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepository, txnRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, txnRepo: txnRepo, categoryRepo: categoryRepo}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) SetBudgets(ctx context.Context, req dto.CreateBudgetRequest) error {
	if req.TotalBudget != nil {
		if req.TotalBudget.IsNegative() {
			return fmt.Errorf("total budget cannot be negative: %w", apperrors.ErrValidation)
		}
		_, err := s.budgetRepo.UpsertBudget(ctx, domain.Budget{
			Month:       req.Month,
			TotalBudget: *req.TotalBudget,
		})
		if err != nil {
			return err
		}
	}

	for _, cb := range req.CategoryBudgets {
		if cb.Budget.IsNegative() {
			return fmt.Errorf("category budget cannot be negative: %w", apperrors.ErrValidation)
		}
		if _, err := s.categoryRepo.FindCategoryByID(ctx, cb.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("category %d does not exist: %w", cb.CategoryID, apperrors.ErrValidation)
			}
			return err
		}
		categoryID := cb.CategoryID
		_, err := s.budgetRepo.UpsertBudget(ctx, domain.Budget{
			Month:          req.Month,
			CategoryID:     &categoryID,
			CategoryBudget: cb.Budget,
		})
		if err != nil {
			return err
		}
	}

	s.LogInfo(ctx, "budgets set", "month", req.Month, "category_count", len(req.CategoryBudgets))
	return nil
}

// GetBudgetsByMonth derives usage from the month's expense transactions at
// read time, so the figures can never drift from the transaction table.
func (s *budgetService) GetBudgetsByMonth(ctx context.Context, month string) (*dto.BudgetListData, error) {
	budgets, err := s.budgetRepo.FindBudgetsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	expenseByCategory, err := s.txnRepo.SumExpensesByCategory(ctx, month)
	if err != nil {
		return nil, err
	}

	totalExpense := decimal.Zero
	for _, amount := range expenseByCategory {
		totalExpense = totalExpense.Add(amount)
	}

	data := &dto.BudgetListData{Budgets: []domain.BudgetUsage{}}
	for _, budget := range budgets {
		used := totalExpense
		if budget.CategoryID != nil {
			used = expenseByCategory[*budget.CategoryID]
		}
		data.Budgets = append(data.Budgets, budgetUsage(budget, used))

		if budget.CategoryID == nil {
			data.Summary = domain.BudgetSummary{
				TotalBudget:    budget.TotalBudget,
				TotalExpense:   totalExpense,
				TotalRemaining: budget.TotalBudget.Sub(totalExpense),
			}
		}
	}
	return data, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID int64, req dto.UpdateBudgetRequest) error {
	if req.TotalBudget == nil && req.CategoryBudget == nil {
		return fmt.Errorf("no budget fields to update: %w", apperrors.ErrValidation)
	}
	if req.TotalBudget != nil && req.TotalBudget.IsNegative() {
		return fmt.Errorf("total budget cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.CategoryBudget != nil && req.CategoryBudget.IsNegative() {
		return fmt.Errorf("category budget cannot be negative: %w", apperrors.ErrValidation)
	}
	return s.budgetRepo.UpdateBudgetLimits(ctx, budgetID, req.TotalBudget, req.CategoryBudget)
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID int64) error {
	return s.budgetRepo.DeleteBudget(ctx, budgetID)
}

func (s *budgetService) GetBudgetAlerts(ctx context.Context, month string) ([]domain.BudgetAlert, error) {
	budgets, err := s.budgetRepo.FindBudgetsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	expenseByCategory, err := s.txnRepo.SumExpensesByCategory(ctx, month)
	if err != nil {
		return nil, err
	}

	totalExpense := decimal.Zero
	for _, amount := range expenseByCategory {
		totalExpense = totalExpense.Add(amount)
	}

	alerts := []domain.BudgetAlert{}
	for _, budget := range budgets {
		limit := budget.Limit()
		if !limit.IsPositive() {
			continue
		}
		used := totalExpense
		if budget.CategoryID != nil {
			used = expenseByCategory[*budget.CategoryID]
		}
		if used.GreaterThanOrEqual(limit) {
			alerts = append(alerts, domain.BudgetAlert{
				Budget:          budget,
				UsedAmount:      used,
				UsagePercentage: used.Mul(oneHundred).Div(limit).Round(2),
			})
		}
	}
	return alerts, nil
}

func budgetUsage(budget domain.Budget, used decimal.Decimal) domain.BudgetUsage {
	limit := budget.Limit()
	remaining := limit.Sub(used)
	percentage := decimal.Zero
	if limit.IsPositive() {
		percentage = used.Div(limit).Mul(oneHundred).Round(2)
	}
	return domain.BudgetUsage{
		Budget:     budget,
		UsedAmount: used,
		Remaining:  remaining,
		Percentage: percentage,
		IsExceeded: remaining.IsNegative(),
	}
}
