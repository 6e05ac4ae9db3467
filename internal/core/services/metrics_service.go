package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/huamengwoke/finance_assistant_app/internal/apperrors"
	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

const dayFormat = "2006-01-02"

// defaultScoreWeights is the weight table used when the caller supplies
// none.
var defaultScoreWeights = map[string]float64{
	domain.MetricAppOpen:        0.1,
	domain.MetricTaskComplete:   0.5,
	domain.MetricTaskReviewPass: 0.4,
}

type metricsService struct {
	BaseService
	metricRepo portsrepo.MetricRepository
	userRepo   portsrepo.UserRepository
}

func NewMetricsService(metricRepo portsrepo.MetricRepository, userRepo portsrepo.UserRepository) portssvc.MetricsSvcFacade {
	return &metricsService{metricRepo: metricRepo, userRepo: userRepo}
}

var _ portssvc.MetricsSvcFacade = (*metricsService)(nil)

func (s *metricsService) RecordMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (*domain.MetricEvent, error) {
	if metricType == "" {
		return nil, fmt.Errorf("metric type is required: %w", apperrors.ErrValidation)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %d does not exist: %w", userID, apperrors.ErrValidation)
		}
		return nil, err
	}
	if day == "" {
		day = time.Now().Format(dayFormat)
	}

	// Unregistered metric types accumulate.
	accumulative := true
	mt, err := s.metricRepo.FindMetricTypeByKey(ctx, metricType)
	if err == nil {
		accumulative = mt.IsAccumulative
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	var event domain.MetricEvent
	if accumulative {
		event, err = s.metricRepo.AccumulateMetric(ctx, userID, metricType, value, day)
	} else {
		event, err = s.metricRepo.OverwriteMetric(ctx, userID, metricType, value, day)
	}
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "metric recorded", "user_id", userID, "metric_type", metricType, "value", value, "date", day)
	return &event, nil
}

// RecordMetricsBatch applies every item even when some fail; each failure
// is reported against its own item.
func (s *metricsService) RecordMetricsBatch(ctx context.Context, items []dto.RecordMetricRequest) []dto.BatchItemResult {
	results := make([]dto.BatchItemResult, 0, len(items))
	for _, item := range items {
		value := int64(1)
		if item.Value != nil {
			value = *item.Value
		}
		event, err := s.RecordMetric(ctx, item.UserID, item.MetricType, value, item.Date)
		result := dto.BatchItemResult{Metric: item}
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Result = event
		}
		results = append(results, result)
	}
	return results
}

func (s *metricsService) RecordAppOpen(ctx context.Context, userID int64) (*domain.MetricEvent, error) {
	return s.RecordMetric(ctx, userID, domain.MetricAppOpen, 1, "")
}

func (s *metricsService) RecordTaskComplete(ctx context.Context, userID int64, taskCount int64) (*domain.MetricEvent, error) {
	if taskCount <= 0 {
		taskCount = 1
	}
	return s.RecordMetric(ctx, userID, domain.MetricTaskComplete, taskCount, "")
}

func (s *metricsService) GetUserMetrics(ctx context.Context, query portsrepo.MetricQuery, groupBy string) (*domain.UserMetricsReport, error) {
	if _, err := s.userRepo.FindUserByID(ctx, query.UserID); err != nil {
		return nil, err
	}

	today := time.Now().Format(dayFormat)
	todayValues, err := s.metricRepo.FindMetricsOnDay(ctx, query.UserID, query.Types, today)
	if err != nil {
		return nil, err
	}

	// Totals cover all time regardless of the history range.
	totals, err := s.metricRepo.SumMetricsByType(ctx, portsrepo.MetricQuery{
		UserID: query.UserID,
		Types:  query.Types,
	})
	if err != nil {
		return nil, err
	}

	dayTotals, err := s.metricRepo.SumMetricsByDay(ctx, query)
	if err != nil {
		return nil, err
	}

	history, err := bucketHistory(dayTotals, groupBy, query.Limit)
	if err != nil {
		return nil, err
	}

	return &domain.UserMetricsReport{
		Today:   todayValues,
		Total:   totals,
		History: history,
	}, nil
}

func (s *metricsService) GetUserScore(ctx context.Context, userID int64, weights map[string]float64, startDate, endDate string) (*domain.UserScore, error) {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		weights = defaultScoreWeights
	}

	types := make([]string, 0, len(weights))
	for metricType := range weights {
		types = append(types, metricType)
	}
	totals, err := s.metricRepo.SumMetricsByType(ctx, portsrepo.MetricQuery{
		UserID:    userID,
		Types:     types,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	score := &domain.UserScore{
		UserID:  userID,
		Details: map[string]domain.MetricScoreDetail{},
		Weights: weights,
	}
	var weightedSum float64
	for metricType, weight := range weights {
		value := totals[metricType]
		weighted := float64(value) * weight
		weightedSum += weighted
		score.Details[metricType] = domain.MetricScoreDetail{
			Value:         value,
			Weight:        weight,
			WeightedValue: weighted,
		}
	}
	score.TotalScore = int64(math.Round(weightedSum))
	return score, nil
}

func (s *metricsService) CompareUsers(ctx context.Context, userIDs []int64, types []string, startDate, endDate string, limit int) ([]domain.UserComparison, error) {
	if len(userIDs) == 0 || len(types) == 0 {
		return nil, fmt.Errorf("userIds and metricTypes are required: %w", apperrors.ErrValidation)
	}

	rows, err := s.metricRepo.CompareUsers(ctx, userIDs, types, startDate, endDate, limit)
	if err != nil {
		return nil, err
	}

	// Group flat rows per user, keeping first-seen order.
	byUser := map[int64]*domain.UserComparison{}
	order := []int64{}
	for _, row := range rows {
		entry, ok := byUser[row.UserID]
		if !ok {
			entry = &domain.UserComparison{
				UserID:   row.UserID,
				Username: row.Username,
				Metrics:  map[string]domain.UserMetricStat{},
			}
			byUser[row.UserID] = entry
			order = append(order, row.UserID)
		}
		entry.Metrics[row.MetricType] = domain.UserMetricStat{
			TotalValue:     row.TotalValue,
			ActiveDays:     row.ActiveDays,
			LastRecordDate: row.LastRecordDate,
		}
	}

	comparisons := make([]domain.UserComparison, 0, len(order))
	for _, userID := range order {
		comparisons = append(comparisons, *byUser[userID])
	}
	return comparisons, nil
}

func (s *metricsService) GetAllStatistics(ctx context.Context, filter portsrepo.ActivityFilter) ([]domain.UserActivitySummary, error) {
	return s.metricRepo.GetAllUserActivity(ctx, filter)
}

func (s *metricsService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	now := time.Now()
	today := now.Format(dayFormat)

	activeUsers, err := s.metricRepo.CountActiveUsers(ctx, today)
	if err != nil {
		return nil, err
	}
	todayTasks, err := s.metricRepo.SumMetricOnDay(ctx, domain.MetricTaskComplete, today)
	if err != nil {
		return nil, err
	}

	weekStart := now.AddDate(0, 0, -6).Format(dayFormat)
	weeklyData, err := s.metricRepo.GetDailySeries(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	monthStart := now.AddDate(0, 0, -29).Format(dayFormat)
	topUsers, err := s.metricRepo.GetTopUsers(ctx, monthStart, 10)
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		TodayActiveUsers: activeUsers,
		TodayTotalTasks:  todayTasks,
		WeeklyData:       weeklyData,
		TopUsers:         topUsers,
	}, nil
}

func (s *metricsService) ListMetricTypes(ctx context.Context) ([]domain.MetricType, error) {
	return s.metricRepo.FindMetricTypes(ctx)
}

func (s *metricsService) CreateMetricType(ctx context.Context, req dto.CreateMetricTypeRequest) (*domain.MetricType, error) {
	accumulative := true
	if req.IsAccumulative != nil {
		accumulative = *req.IsAccumulative
	}
	mt, err := s.metricRepo.SaveMetricType(ctx, domain.MetricType{
		MetricKey:      req.MetricKey,
		DisplayName:    req.DisplayName,
		Description:    req.Description,
		Unit:           req.Unit,
		IsAccumulative: accumulative,
		DefaultValue:   req.DefaultValue,
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "metric type registered", "metric_key", mt.MetricKey)
	return &mt, nil
}

// bucketHistory rolls day totals up into groupBy periods, keeping at most
// limit most recent periods per metric. Weeks use ISO 8601 numbering in
// the form YYYY-Www.
func bucketHistory(dayTotals []domain.MetricDayTotal, groupBy string, limit int) (map[string][]domain.MetricPeriodPoint, error) {
	history := map[string][]domain.MetricPeriodPoint{}
	for _, dt := range dayTotals {
		period, err := periodLabel(dt.Day, groupBy)
		if err != nil {
			return nil, err
		}
		points := history[dt.MetricType]
		if n := len(points); n > 0 && points[n-1].Period == period {
			points[n-1].Value += dt.TotalValue
			points[n-1].RecordCount += dt.RecordCount
		} else {
			points = append(points, domain.MetricPeriodPoint{
				Period:      period,
				Value:       dt.TotalValue,
				RecordCount: dt.RecordCount,
			})
		}
		history[dt.MetricType] = points
	}

	// Day totals arrive newest first, so the most recent periods sit at
	// the front.
	if limit > 0 {
		for metricType, points := range history {
			if len(points) > limit {
				history[metricType] = points[:limit]
			}
		}
	}
	return history, nil
}

func periodLabel(day string, groupBy string) (string, error) {
	switch groupBy {
	case "", "day":
		return day, nil
	case "month":
		if len(day) < 7 {
			return "", fmt.Errorf("malformed day string %q", day)
		}
		return day[:7], nil
	case "year":
		if len(day) < 4 {
			return "", fmt.Errorf("malformed day string %q", day)
		}
		return day[:4], nil
	case "week":
		t, err := time.Parse(dayFormat, day)
		if err != nil {
			return "", fmt.Errorf("malformed day string %q: %w", day, err)
		}
		isoYear, isoWeek := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", isoYear, isoWeek), nil
	default:
		return "", fmt.Errorf("unsupported grouping %q: %w", groupBy, apperrors.ErrValidation)
	}
}
