package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// CategoryRepository persists income/expense categories.
type CategoryRepository interface {
	// SaveCategory inserts a custom category and returns it with its ID.
	SaveCategory(ctx context.Context, category domain.Category) (domain.Category, error)

	// FindCategories retrieves all categories, presets first.
	FindCategories(ctx context.Context) ([]domain.Category, error)

	// FindCategoriesByType retrieves categories of one type.
	FindCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)

	// FindCategoryByID retrieves a category by primary key.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// UpdateCategory overwrites a category's name, icon and color.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category row.
	DeleteCategory(ctx context.Context, categoryID int64) error
}
