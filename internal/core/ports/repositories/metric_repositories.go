package repositories

import (
	"context"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
)

// MetricQuery selects metric rows for rollups. Empty fields are not
// applied; dates are inclusive YYYY-MM-DD day strings.
type MetricQuery struct {
	UserID    int64
	Types     []string
	StartDate string
	EndDate   string
	Limit     int
}

// UserComparisonRow is one flat (user, metric) aggregate; the service
// layer groups rows per user.
type UserComparisonRow struct {
	UserID         int64
	Username       string
	MetricType     string
	TotalValue     int64
	ActiveDays     int64
	LastRecordDate string
}

// ActivityFilter selects rows for the all-users activity listing.
type ActivityFilter struct {
	StartDate string
	EndDate   string
	Role      domain.UserRole
	Limit     int
}

// MetricRepository persists metric events and their type metadata.
type MetricRepository interface {
	// FindMetricTypeByKey retrieves one metric type definition.
	FindMetricTypeByKey(ctx context.Context, metricKey string) (*domain.MetricType, error)

	// FindMetricTypes retrieves all metric type definitions, oldest first.
	FindMetricTypes(ctx context.Context) ([]domain.MetricType, error)

	// SaveMetricType registers a new metric type.
	SaveMetricType(ctx context.Context, metricType domain.MetricType) (domain.MetricType, error)

	// AccumulateMetric adds value into the (user, type, day) row, creating
	// it when absent. Returns the stored row after the write.
	AccumulateMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error)

	// OverwriteMetric replaces the (user, type, day) row's value, creating
	// the row when absent. Returns the stored row after the write.
	OverwriteMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error)

	// SumMetricsByDay sums a user's metric values per (day, type).
	SumMetricsByDay(ctx context.Context, query MetricQuery) ([]domain.MetricDayTotal, error)

	// SumMetricsByType sums a user's metric values per type over a range;
	// an empty range means all time.
	SumMetricsByType(ctx context.Context, query MetricQuery) (map[string]int64, error)

	// FindMetricsOnDay retrieves a user's per-type values for one day.
	FindMetricsOnDay(ctx context.Context, userID int64, types []string, day string) (map[string]int64, error)

	// CompareUsers aggregates totals, active days and last activity per
	// (user, metric) for a set of users and metric types.
	CompareUsers(ctx context.Context, userIDs []int64, types []string, startDate, endDate string, limit int) ([]UserComparisonRow, error)

	// GetAllUserActivity aggregates the core activity metrics for every
	// user matching the filter, most active first.
	GetAllUserActivity(ctx context.Context, filter ActivityFilter) ([]domain.UserActivitySummary, error)

	// CountActiveUsers counts distinct users with any metric on a day.
	CountActiveUsers(ctx context.Context, day string) (int64, error)

	// SumMetricOnDay sums one metric across all users for a day.
	SumMetricOnDay(ctx context.Context, metricType string, day string) (int64, error)

	// GetDailySeries returns per-day app_open/task_complete sums for days
	// on or after fromDay, newest first.
	GetDailySeries(ctx context.Context, fromDay string) ([]domain.DashboardDay, error)

	// GetTopUsers ranks users by completed tasks since fromDay.
	GetTopUsers(ctx context.Context, fromDay string, limit int) ([]domain.DashboardRank, error)
}
