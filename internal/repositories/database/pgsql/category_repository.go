package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{db: db}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	query := `
        INSERT INTO categories (name, type, is_custom, icon, color)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at;
    `
	err := r.db.QueryRow(ctx, query,
		category.Name,
		category.Type,
		category.IsCustom,
		category.Icon,
		category.Color,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Category{}, fmt.Errorf("category %q (%s) already exists: %w", category.Name, category.Type, apperrors.ErrDuplicate)
		}
		return domain.Category{}, fmt.Errorf("failed to save category: %w", err)
	}
	return category, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name, type, is_custom, icon, color, created_at, updated_at
        FROM categories
        ORDER BY is_custom ASC, id ASC;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

func (r *PgxCategoryRepository) FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	query := `
        SELECT id, name, type, is_custom, icon, color, created_at, updated_at
        FROM categories
        WHERE type = $1
        ORDER BY is_custom ASC, id ASC;
    `
	rows, err := r.db.Query(ctx, query, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by type: %w", err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `
		SELECT id, name, type, is_custom, icon, color, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`
	var category domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&category.ID,
		&category.Name,
		&category.Type,
		&category.IsCustom,
		&category.Icon,
		&category.Color,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %d: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, icon = $2, color = $3, updated_at = NOW()
        WHERE id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Name,
		category.Icon,
		category.Color,
		category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category %q (%s) already exists: %w", category.Name, category.Type, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update category query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	query := `DELETE FROM categories WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Type,
			&category.IsCustom,
			&category.Icon,
			&category.Color,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}
