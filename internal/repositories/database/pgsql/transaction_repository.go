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

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	t.id, t.amount, t.type, t.category_id, t.date, t.note, t.created_at, t.updated_at,
	c.name, c.icon, c.color
`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	query := `
        INSERT INTO transactions (amount, type, category_id, date, note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		txn.Amount,
		txn.Type,
		txn.CategoryID,
		txn.Date,
		txn.Note,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, txnID int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1;
	`
	var txn domain.Transaction
	err := r.db.QueryRow(ctx, query, txnID).Scan(
		&txn.ID,
		&txn.Amount,
		&txn.Type,
		&txn.CategoryID,
		&txn.Date,
		&txn.Note,
		&txn.CreatedAt,
		&txn.UpdatedAt,
		&txn.CategoryName,
		&txn.CategoryIcon,
		&txn.CategoryColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %d: %w", txnID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case filter.Month != "":
		// Month membership by day-string prefix keeps the bucketing
		// identical to the application side.
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			WHERE substr(t.date, 1, 7) = $1
			ORDER BY t.date DESC, t.id DESC;
		`
		rows, err = r.db.Query(ctx, query, filter.Month)
	case filter.StartDate != "" && filter.EndDate != "":
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			WHERE t.date >= $1 AND t.date <= $2
			ORDER BY t.date DESC, t.id DESC;
		`
		rows, err = r.db.Query(ctx, query, filter.StartDate, filter.EndDate)
	default:
		query := `
			SELECT ` + transactionColumns + `
			FROM transactions t
			JOIN categories c ON c.id = t.category_id
			ORDER BY t.date DESC, t.id DESC;
		`
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.Amount,
			&txn.Type,
			&txn.CategoryID,
			&txn.Date,
			&txn.Note,
			&txn.CreatedAt,
			&txn.UpdatedAt,
			&txn.CategoryName,
			&txn.CategoryIcon,
			&txn.CategoryColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET amount = $1, type = $2, category_id = $3, date = $4, note = $5, updated_at = NOW()
        WHERE id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		txn.Amount,
		txn.Type,
		txn.CategoryID,
		txn.Date,
		txn.Note,
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txnID int64) error {
	query := `DELETE FROM transactions WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) SumExpensesByCategory(ctx context.Context, month string) (map[int64]decimal.Decimal, error) {
	query := `
		SELECT category_id, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'expense' AND substr(date, 1, 7) = $1
		GROUP BY category_id;
	`
	rows, err := r.db.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses for month %s: %w", month, err)
	}
	defer rows.Close()

	sums := map[int64]decimal.Decimal{}
	for rows.Next() {
		var categoryID int64
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan expense sum row: %w", err)
		}
		sums[categoryID] = total
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense sum rows: %w", rows.Err())
	}
	return sums, nil
}

func (r *PgxTransactionRepository) GetCategoryStatistics(ctx context.Context, startDate, endDate string) ([]domain.CategoryStat, error) {
	// LEFT JOIN keeps categories without activity in the report with
	// zero totals.
	query := `
		SELECT c.id, c.name, c.type, c.icon, c.color,
		       COALESCE(SUM(t.amount), 0) AS total_amount,
		       COUNT(t.id) AS transaction_count
		FROM categories c
		LEFT JOIN transactions t
		  ON t.category_id = c.id AND t.date >= $1 AND t.date <= $2
		GROUP BY c.id, c.name, c.type, c.icon, c.color
		ORDER BY total_amount DESC;
	`
	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query category statistics: %w", err)
	}
	defer rows.Close()

	stats := []domain.CategoryStat{}
	for rows.Next() {
		var stat domain.CategoryStat
		err := rows.Scan(
			&stat.CategoryID,
			&stat.Name,
			&stat.Type,
			&stat.Icon,
			&stat.Color,
			&stat.TotalAmount,
			&stat.TransactionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category statistics row: %w", err)
		}
		stats = append(stats, stat)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category statistics rows: %w", rows.Err())
	}
	return stats, nil
}
