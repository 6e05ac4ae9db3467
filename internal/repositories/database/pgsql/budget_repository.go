package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
)

type PgxBudgetRepository struct {
	db *pgxpool.Pool
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{db: db}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (domain.Budget, error) {
	// The unique index treats NULL category_id as a real value, so the
	// month total row and each category row conflict as expected.
	query := `
        INSERT INTO budgets (month, total_budget, category_id, category_budget)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (month, category_id) DO UPDATE SET
            total_budget = EXCLUDED.total_budget,
            category_budget = EXCLUDED.category_budget,
            updated_at = NOW()
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		budget.Month,
		budget.TotalBudget,
		budget.CategoryID,
		budget.CategoryBudget,
	).Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("failed to upsert budget: %w", err)
	}
	return budget, nil
}

func (r *PgxBudgetRepository) FindBudgetsByMonth(ctx context.Context, month string) ([]domain.Budget, error) {
	query := `
		SELECT b.id, b.month, b.total_budget, b.category_id, b.category_budget,
		       b.created_at, b.updated_at, c.name
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.month = $1
		ORDER BY b.category_id ASC NULLS FIRST;
	`
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for month %s: %w", month, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var budget domain.Budget
		err := rows.Scan(
			&budget.ID,
			&budget.Month,
			&budget.TotalBudget,
			&budget.CategoryID,
			&budget.CategoryBudget,
			&budget.CreatedAt,
			&budget.UpdatedAt,
			&budget.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID int64) (*domain.Budget, error) {
	query := `
		SELECT b.id, b.month, b.total_budget, b.category_id, b.category_budget,
		       b.created_at, b.updated_at, c.name
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1;
	`
	var budget domain.Budget
	err := r.db.QueryRow(ctx, query, budgetID).Scan(
		&budget.ID,
		&budget.Month,
		&budget.TotalBudget,
		&budget.CategoryID,
		&budget.CategoryBudget,
		&budget.CreatedAt,
		&budget.UpdatedAt,
		&budget.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %d: %w", budgetID, err)
	}
	return &budget, nil
}

func (r *PgxBudgetRepository) UpdateBudgetLimits(ctx context.Context, budgetID int64, totalBudget, categoryBudget *decimal.Decimal) error {
	query := `
        UPDATE budgets
        SET total_budget = COALESCE($1, total_budget),
            category_budget = COALESCE($2, category_budget),
            updated_at = NOW()
        WHERE id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, totalBudget, categoryBudget, budgetID)
	if err != nil {
		return fmt.Errorf("failed to execute update budget query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("budget not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
