package services

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// MetricsSvcFacade covers metric recording and the rollup/score queries.
type MetricsSvcFacade interface {
	// RecordMetric applies one reading using the metric type's
	// accumulate-vs-overwrite policy. An empty day means today.
	RecordMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (*domain.MetricEvent, error)

	// RecordMetricsBatch applies readings independently; item failures are
	// reported inline and never abort the batch.
	RecordMetricsBatch(ctx context.Context, items []dto.RecordMetricRequest) []dto.BatchItemResult

	// RecordAppOpen bumps the app_open counter for today.
	RecordAppOpen(ctx context.Context, userID int64) (*domain.MetricEvent, error)

	// RecordTaskComplete bumps the task_complete counter for today.
	RecordTaskComplete(ctx context.Context, userID int64, taskCount int64) (*domain.MetricEvent, error)

	// GetUserMetrics builds the per-user rollup: bucketed history, today's
	// values and all-time totals.
	GetUserMetrics(ctx context.Context, query portsrepo.MetricQuery, groupBy string) (*domain.UserMetricsReport, error)

	// GetUserScore computes the weighted score over a range.
	GetUserScore(ctx context.Context, userID int64, weights map[string]float64, startDate, endDate string) (*domain.UserScore, error)

	// CompareUsers aggregates metric totals across a set of users.
	CompareUsers(ctx context.Context, userIDs []int64, types []string, startDate, endDate string, limit int) ([]domain.UserComparison, error)

	// GetAllStatistics lists activity rollups for every user.
	GetAllStatistics(ctx context.Context, filter portsrepo.ActivityFilter) ([]domain.UserActivitySummary, error)

	// GetDashboard builds the aggregate dashboard view.
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)

	// ListMetricTypes lists all registered metric types.
	ListMetricTypes(ctx context.Context) ([]domain.MetricType, error)

	// CreateMetricType registers a new metric type.
	CreateMetricType(ctx context.Context, req dto.CreateMetricTypeRequest) (*domain.MetricType, error)
}
