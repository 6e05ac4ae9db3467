package services

import (
	"context"
	"fmt"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// Defaults applied to custom categories created without icon/color.
const (
	defaultCategoryIcon  = "📌"
	defaultCategoryColor = "#828282"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.FindCategories(ctx)
}

func (s *categoryService) ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	if !categoryType.IsValid() {
		return nil, fmt.Errorf("invalid category type %q: %w", categoryType, apperrors.ErrValidation)
	}
	return s.categoryRepo.FindCategoriesByType(ctx, categoryType)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		Name:     req.Name,
		Type:     domain.CategoryType(req.Type),
		IsCustom: true,
		Icon:     req.Icon,
		Color:    req.Color,
	}
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = defaultCategoryColor
	}

	saved, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "category created", "category_id", saved.ID, "name", saved.Name)
	return &saved, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsCustom {
		return nil, fmt.Errorf("preset categories cannot be modified: %w", apperrors.ErrForbidden)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if !category.IsCustom {
		return fmt.Errorf("preset categories cannot be deleted: %w", apperrors.ErrForbidden)
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
