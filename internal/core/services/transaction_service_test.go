package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/core/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
	ctx              context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
	suite.ctx = context.Background()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := dto.CreateTransactionRequest{
		Amount:     decimal.NewFromFloat(12.50),
		Type:       "expense",
		CategoryID: 1,
		Date:       "2024-06-15",
		Note:       "lunch",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, int64(1)).
		Return(&domain.Category{ID: 1, Name: "餐饮"}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(decimal.NewFromFloat(12.50)) &&
			t.Type == domain.TransactionExpense &&
			t.CategoryID == 1 &&
			t.Date == "2024-06-15"
	})).Return(domain.Transaction{ID: 5, Amount: decimal.NewFromFloat(12.50), Type: domain.TransactionExpense}, nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), txn.ID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	req := dto.CreateTransactionRequest{
		Amount:     decimal.Zero,
		Type:       "expense",
		CategoryID: 1,
		Date:       "2024-06-15",
	}

	_, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	req := dto.CreateTransactionRequest{
		Amount:     decimal.NewFromInt(10),
		Type:       "expense",
		CategoryID: 99,
		Date:       "2024-06-15",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PartialUpdateRefetches() {
	existing := &domain.Transaction{
		ID: 5, Amount: decimal.NewFromInt(10), Type: domain.TransactionExpense,
		CategoryID: 1, Date: "2024-06-15",
	}
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, int64(5)).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", suite.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ID == 5 && t.Amount.Equal(decimal.NewFromInt(20)) && t.CategoryID == 1
	})).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, int64(5)).
		Return(&domain.Transaction{ID: 5, Amount: decimal.NewFromInt(20), CategoryName: "餐饮"}, nil).Once()

	amount := decimal.NewFromInt(20)
	txn, err := suite.service.UpdateTransaction(suite.ctx, 5, dto.UpdateTransactionRequest{Amount: &amount})

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(20)))
	suite.Equal("餐饮", txn.CategoryName)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(suite.ctx, 404, dto.UpdateTransactionRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetCategoryStatistics_SplitsAndTotals() {
	stats := []domain.CategoryStat{
		{CategoryID: 7, Name: "工资", Type: domain.CategoryIncome, TotalAmount: decimal.NewFromInt(5000), TransactionCount: 1},
		{CategoryID: 1, Name: "餐饮", Type: domain.CategoryExpense, TotalAmount: decimal.NewFromInt(800), TransactionCount: 12},
		{CategoryID: 3, Name: "购物", Type: domain.CategoryExpense, TotalAmount: decimal.NewFromInt(200), TransactionCount: 2},
	}
	suite.mockTxnRepo.On("GetCategoryStatistics", suite.ctx, "2024-06-01", "2024-06-30").
		Return(stats, nil).Once()

	report, err := suite.service.GetCategoryStatistics(suite.ctx, "2024-06-01", "2024-06-30")

	suite.Require().NoError(err)
	suite.Len(report.Income, 1)
	suite.Len(report.Expense, 2)
	suite.True(report.Summary.TotalIncome.Equal(decimal.NewFromInt(5000)))
	suite.True(report.Summary.TotalExpense.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Summary.Balance.Equal(decimal.NewFromInt(4000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetCategoryStatistics_DefaultsToCurrentMonth() {
	suite.mockTxnRepo.On("GetCategoryStatistics", suite.ctx,
		mock.MatchedBy(func(start string) bool { return len(start) == 10 && start[8:] == "01" }),
		mock.MatchedBy(func(end string) bool { return len(end) == 10 }),
	).Return([]domain.CategoryStat{}, nil).Once()

	report, err := suite.service.GetCategoryStatistics(suite.ctx, "", "")

	suite.Require().NoError(err)
	suite.Empty(report.Categories)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
