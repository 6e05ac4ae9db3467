package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/core/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
	ctx      context.Context
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_AppliesDefaults() {
	suite.mockRepo.On("SaveCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Books" &&
			c.Type == domain.CategoryExpense &&
			c.IsCustom &&
			c.Icon == "📌" &&
			c.Color == "#828282"
	})).Return(domain.Category{ID: 11, Name: "Books", Type: domain.CategoryExpense, IsCustom: true, Icon: "📌", Color: "#828282"}, nil).Once()

	category, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Books", Type: "expense"})

	suite.Require().NoError(err)
	suite.Equal(int64(11), category.ID)
	suite.True(category.IsCustom)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_KeepsProvidedIconAndColor() {
	suite.mockRepo.On("SaveCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Icon == "📚" && c.Color == "#123456"
	})).Return(domain.Category{ID: 12, Name: "Books", Icon: "📚", Color: "#123456", IsCustom: true}, nil).Once()

	_, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{
		Name: "Books", Type: "expense", Icon: "📚", Color: "#123456",
	})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PresetForbidden() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, int64(1)).
		Return(&domain.Category{ID: 1, Name: "餐饮", IsCustom: false}, nil).Once()

	name := "renamed"
	_, err := suite.service.UpdateCategory(suite.ctx, 1, dto.UpdateCategoryRequest{Name: &name})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_CustomSuccess() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, int64(11)).
		Return(&domain.Category{ID: 11, Name: "Books", IsCustom: true, Icon: "📌", Color: "#828282"}, nil).Once()
	suite.mockRepo.On("UpdateCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.ID == 11 && c.Name == "Novels" && c.Icon == "📌"
	})).Return(nil).Once()

	name := "Novels"
	category, err := suite.service.UpdateCategory(suite.ctx, 11, dto.UpdateCategoryRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Novels", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_PresetForbidden() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, int64(1)).
		Return(&domain.Category{ID: 1, Name: "餐饮", IsCustom: false}, nil).Once()

	err := suite.service.DeleteCategory(suite.ctx, 1)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_CustomSuccess() {
	suite.mockRepo.On("FindCategoryByID", suite.ctx, int64(11)).
		Return(&domain.Category{ID: 11, Name: "Books", IsCustom: true}, nil).Once()
	suite.mockRepo.On("DeleteCategory", suite.ctx, int64(11)).Return(nil).Once()

	err := suite.service.DeleteCategory(suite.ctx, 11)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategoriesByType_InvalidType() {
	_, err := suite.service.ListCategoriesByType(suite.ctx, domain.CategoryType("savings"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCategoriesByType", mock.Anything, mock.Anything)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
