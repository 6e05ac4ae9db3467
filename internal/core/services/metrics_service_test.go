package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/core/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

type MetricsServiceTestSuite struct {
	suite.Suite
	mockMetricRepo *MockMetricRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.MetricsSvcFacade
	ctx            context.Context
}

func (suite *MetricsServiceTestSuite) SetupTest() {
	suite.mockMetricRepo = new(MockMetricRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewMetricsService(suite.mockMetricRepo, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *MetricsServiceTestSuite) expectUser(userID int64) {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, userID).
		Return(&domain.User{ID: userID, Username: "someone"}, nil)
}

func (suite *MetricsServiceTestSuite) TestRecordMetric_AccumulativeType() {
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "app_open").
		Return(&domain.MetricType{MetricKey: "app_open", IsAccumulative: true}, nil).Once()
	suite.mockMetricRepo.On("AccumulateMetric", suite.ctx, int64(1), "app_open", int64(2), "2024-06-03").
		Return(domain.MetricEvent{ID: 10, UserID: 1, MetricType: "app_open", MetricValue: 5, MetricDate: "2024-06-03"}, nil).Once()

	event, err := suite.service.RecordMetric(suite.ctx, 1, "app_open", 2, "2024-06-03")

	suite.Require().NoError(err)
	suite.Equal(int64(5), event.MetricValue)
	suite.mockMetricRepo.AssertNotCalled(suite.T(), "OverwriteMetric", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestRecordMetric_OverwriteType() {
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "last_active").
		Return(&domain.MetricType{MetricKey: "last_active", IsAccumulative: false}, nil).Once()
	suite.mockMetricRepo.On("OverwriteMetric", suite.ctx, int64(1), "last_active", int64(1718064000), "2024-06-03").
		Return(domain.MetricEvent{ID: 11, UserID: 1, MetricType: "last_active", MetricValue: 1718064000, MetricDate: "2024-06-03"}, nil).Once()

	event, err := suite.service.RecordMetric(suite.ctx, 1, "last_active", 1718064000, "2024-06-03")

	suite.Require().NoError(err)
	suite.Equal(int64(1718064000), event.MetricValue)
	suite.mockMetricRepo.AssertNotCalled(suite.T(), "AccumulateMetric", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestRecordMetric_UnregisteredTypeAccumulates() {
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "custom_counter").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockMetricRepo.On("AccumulateMetric", suite.ctx, int64(1), "custom_counter", int64(3), "2024-06-03").
		Return(domain.MetricEvent{ID: 12, MetricValue: 3}, nil).Once()

	_, err := suite.service.RecordMetric(suite.ctx, 1, "custom_counter", 3, "2024-06-03")

	suite.Require().NoError(err)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestRecordMetric_EmptyDayMeansToday() {
	today := time.Now().Format("2006-01-02")
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "app_open").
		Return(&domain.MetricType{MetricKey: "app_open", IsAccumulative: true}, nil).Once()
	suite.mockMetricRepo.On("AccumulateMetric", suite.ctx, int64(1), "app_open", int64(1), today).
		Return(domain.MetricEvent{ID: 13, MetricDate: today}, nil).Once()

	event, err := suite.service.RecordAppOpen(suite.ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(today, event.MetricDate)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestRecordMetric_UnknownUser() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordMetric(suite.ctx, 99, "app_open", 1, "2024-06-03")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMetricRepo.AssertNotCalled(suite.T(), "AccumulateMetric", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MetricsServiceTestSuite) TestRecordMetricsBatch_ContinuesAfterFailure() {
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "app_open").
		Return(&domain.MetricType{MetricKey: "app_open", IsAccumulative: true}, nil).Once()
	suite.mockMetricRepo.On("AccumulateMetric", suite.ctx, int64(1), "app_open", int64(1), "2024-06-03").
		Return(domain.MetricEvent{ID: 20}, nil).Once()

	value := int64(1)
	results := suite.service.RecordMetricsBatch(suite.ctx, []dto.RecordMetricRequest{
		{UserID: 99, MetricType: "app_open", Value: &value, Date: "2024-06-03"},
		{UserID: 1, MetricType: "app_open", Date: "2024-06-03"},
	})

	suite.Require().Len(results, 2)
	suite.NotEmpty(results[0].Error)
	suite.Nil(results[0].Result)
	suite.Empty(results[1].Error)
	suite.NotNil(results[1].Result)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestRecordTaskComplete_DefaultsCountToOne() {
	today := time.Now().Format("2006-01-02")
	suite.expectUser(1)
	suite.mockMetricRepo.On("FindMetricTypeByKey", suite.ctx, "task_complete").
		Return(&domain.MetricType{MetricKey: "task_complete", IsAccumulative: true}, nil).Once()
	suite.mockMetricRepo.On("AccumulateMetric", suite.ctx, int64(1), "task_complete", int64(1), today).
		Return(domain.MetricEvent{ID: 21}, nil).Once()

	_, err := suite.service.RecordTaskComplete(suite.ctx, 1, 0)

	suite.Require().NoError(err)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestGetUserScore_DefaultWeights() {
	suite.expectUser(1)
	suite.mockMetricRepo.On("SumMetricsByType", suite.ctx, mock.MatchedBy(func(q portsrepo.MetricQuery) bool {
		return q.UserID == 1 && len(q.Types) == 3 && q.StartDate == "2024-06-01" && q.EndDate == "2024-06-30"
	})).Return(map[string]int64{
		"app_open":         10,
		"task_complete":    4,
		"task_review_pass": 2,
	}, nil).Once()

	score, err := suite.service.GetUserScore(suite.ctx, 1, nil, "2024-06-01", "2024-06-30")

	suite.Require().NoError(err)
	// 10*0.1 + 4*0.5 + 2*0.4 = 3.8, rounded to 4.
	suite.Equal(int64(4), score.TotalScore)
	suite.Equal(int64(4), score.Details["task_complete"].Value)
	suite.InDelta(2.0, score.Details["task_complete"].WeightedValue, 1e-9)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestGetUserScore_CustomWeights() {
	suite.expectUser(1)
	suite.mockMetricRepo.On("SumMetricsByType", suite.ctx, mock.MatchedBy(func(q portsrepo.MetricQuery) bool {
		return len(q.Types) == 1 && q.Types[0] == "task_submit"
	})).Return(map[string]int64{"task_submit": 7}, nil).Once()

	score, err := suite.service.GetUserScore(suite.ctx, 1, map[string]float64{"task_submit": 2}, "", "")

	suite.Require().NoError(err)
	suite.Equal(int64(14), score.TotalScore)
}

func (suite *MetricsServiceTestSuite) TestGetUserMetrics_WeeklyBuckets() {
	suite.expectUser(1)
	today := time.Now().Format("2006-01-02")
	suite.mockMetricRepo.On("FindMetricsOnDay", suite.ctx, int64(1), []string(nil), today).
		Return(map[string]int64{"app_open": 1}, nil).Once()
	suite.mockMetricRepo.On("SumMetricsByType", suite.ctx, portsrepo.MetricQuery{UserID: 1}).
		Return(map[string]int64{"app_open": 9}, nil).Once()
	// Newest first, as the store returns them. 2024-06-03 is ISO week 23,
	// 2024-06-10 is week 24.
	suite.mockMetricRepo.On("SumMetricsByDay", suite.ctx, portsrepo.MetricQuery{UserID: 1}).
		Return([]domain.MetricDayTotal{
			{Day: "2024-06-10", MetricType: "app_open", TotalValue: 2, RecordCount: 1},
			{Day: "2024-06-04", MetricType: "app_open", TotalValue: 3, RecordCount: 1},
			{Day: "2024-06-03", MetricType: "app_open", TotalValue: 4, RecordCount: 2},
		}, nil).Once()

	report, err := suite.service.GetUserMetrics(suite.ctx, portsrepo.MetricQuery{UserID: 1}, "week")

	suite.Require().NoError(err)
	suite.Equal(int64(1), report.Today["app_open"])
	suite.Equal(int64(9), report.Total["app_open"])

	points := report.History["app_open"]
	suite.Require().Len(points, 2)
	suite.Equal("2024-W24", points[0].Period)
	suite.Equal(int64(2), points[0].Value)
	suite.Equal("2024-W23", points[1].Period)
	suite.Equal(int64(7), points[1].Value)
	suite.Equal(int64(3), points[1].RecordCount)
}

func (suite *MetricsServiceTestSuite) TestGetUserMetrics_MonthBucketsWithLimit() {
	suite.expectUser(1)
	today := time.Now().Format("2006-01-02")
	query := portsrepo.MetricQuery{UserID: 1, Limit: 1}
	suite.mockMetricRepo.On("FindMetricsOnDay", suite.ctx, int64(1), []string(nil), today).
		Return(map[string]int64{}, nil).Once()
	suite.mockMetricRepo.On("SumMetricsByType", suite.ctx, portsrepo.MetricQuery{UserID: 1}).
		Return(map[string]int64{}, nil).Once()
	suite.mockMetricRepo.On("SumMetricsByDay", suite.ctx, query).
		Return([]domain.MetricDayTotal{
			{Day: "2024-06-10", MetricType: "app_open", TotalValue: 2, RecordCount: 1},
			{Day: "2024-05-20", MetricType: "app_open", TotalValue: 5, RecordCount: 2},
		}, nil).Once()

	report, err := suite.service.GetUserMetrics(suite.ctx, query, "month")

	suite.Require().NoError(err)
	points := report.History["app_open"]
	suite.Require().Len(points, 1)
	suite.Equal("2024-06", points[0].Period)
}

func (suite *MetricsServiceTestSuite) TestGetUserMetrics_UnsupportedGrouping() {
	suite.expectUser(1)
	today := time.Now().Format("2006-01-02")
	suite.mockMetricRepo.On("FindMetricsOnDay", suite.ctx, int64(1), []string(nil), today).
		Return(map[string]int64{}, nil).Once()
	suite.mockMetricRepo.On("SumMetricsByType", suite.ctx, portsrepo.MetricQuery{UserID: 1}).
		Return(map[string]int64{}, nil).Once()
	suite.mockMetricRepo.On("SumMetricsByDay", suite.ctx, portsrepo.MetricQuery{UserID: 1}).
		Return([]domain.MetricDayTotal{{Day: "2024-06-10", MetricType: "app_open", TotalValue: 2}}, nil).Once()

	_, err := suite.service.GetUserMetrics(suite.ctx, portsrepo.MetricQuery{UserID: 1}, "quarter")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MetricsServiceTestSuite) TestCompareUsers_GroupsRowsPerUser() {
	rows := []portsrepo.UserComparisonRow{
		{UserID: 1, Username: "admin", MetricType: "app_open", TotalValue: 10, ActiveDays: 5, LastRecordDate: "2024-06-10"},
		{UserID: 2, Username: "user1", MetricType: "app_open", TotalValue: 3, ActiveDays: 2, LastRecordDate: "2024-06-08"},
		{UserID: 1, Username: "admin", MetricType: "task_complete", TotalValue: 4, ActiveDays: 3, LastRecordDate: "2024-06-09"},
	}
	suite.mockMetricRepo.On("CompareUsers", suite.ctx, []int64{1, 2}, []string{"app_open", "task_complete"}, "", "", 0).
		Return(rows, nil).Once()

	comparisons, err := suite.service.CompareUsers(suite.ctx, []int64{1, 2}, []string{"app_open", "task_complete"}, "", "", 0)

	suite.Require().NoError(err)
	suite.Require().Len(comparisons, 2)
	suite.Equal(int64(1), comparisons[0].UserID)
	suite.Len(comparisons[0].Metrics, 2)
	suite.Equal(int64(4), comparisons[0].Metrics["task_complete"].TotalValue)
	suite.Equal(int64(2), comparisons[1].UserID)
	suite.Len(comparisons[1].Metrics, 1)
}

func (suite *MetricsServiceTestSuite) TestCompareUsers_RequiresInputs() {
	_, err := suite.service.CompareUsers(suite.ctx, nil, []string{"app_open"}, "", "", 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CompareUsers(suite.ctx, []int64{1}, nil, "", "", 0)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MetricsServiceTestSuite) TestGetDashboard() {
	suite.mockMetricRepo.On("CountActiveUsers", suite.ctx, mock.AnythingOfType("string")).
		Return(int64(3), nil).Once()
	suite.mockMetricRepo.On("SumMetricOnDay", suite.ctx, "task_complete", mock.AnythingOfType("string")).
		Return(int64(12), nil).Once()
	suite.mockMetricRepo.On("GetDailySeries", suite.ctx, mock.AnythingOfType("string")).
		Return([]domain.DashboardDay{{Date: "2024-06-10", DailyOpens: 4, DailyTasks: 2}}, nil).Once()
	suite.mockMetricRepo.On("GetTopUsers", suite.ctx, mock.AnythingOfType("string"), 10).
		Return([]domain.DashboardRank{{Username: "admin", TotalTasks: 8, TotalOpens: 20}}, nil).Once()

	dashboard, err := suite.service.GetDashboard(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), dashboard.TodayActiveUsers)
	suite.Equal(int64(12), dashboard.TodayTotalTasks)
	suite.Len(dashboard.WeeklyData, 1)
	suite.Len(dashboard.TopUsers, 1)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func (suite *MetricsServiceTestSuite) TestCreateMetricType_DefaultsToAccumulative() {
	suite.mockMetricRepo.On("SaveMetricType", suite.ctx, mock.MatchedBy(func(mt domain.MetricType) bool {
		return mt.MetricKey == "coffee_count" && mt.IsAccumulative
	})).Return(domain.MetricType{ID: 9, MetricKey: "coffee_count", IsAccumulative: true}, nil).Once()

	mt, err := suite.service.CreateMetricType(suite.ctx, dto.CreateMetricTypeRequest{
		MetricKey: "coffee_count", DisplayName: "Coffee",
	})

	suite.Require().NoError(err)
	suite.True(mt.IsAccumulative)
	suite.mockMetricRepo.AssertExpectations(suite.T())
}

func TestMetricsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsServiceTestSuite))
}
