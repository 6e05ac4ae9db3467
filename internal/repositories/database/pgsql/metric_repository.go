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

type PgxMetricRepository struct {
	db *pgxpool.Pool
}

func newPgxMetricRepository(db *pgxpool.Pool) portsrepo.MetricRepository {
	return &PgxMetricRepository{db: db}
}

var _ portsrepo.MetricRepository = (*PgxMetricRepository)(nil)

func (r *PgxMetricRepository) FindMetricTypeByKey(ctx context.Context, metricKey string) (*domain.MetricType, error) {
	query := `
		SELECT id, metric_key, display_name, description, unit, is_accumulative, default_value, created_at
		FROM metric_types
		WHERE metric_key = $1;
	`
	var mt domain.MetricType
	err := r.db.QueryRow(ctx, query, metricKey).Scan(
		&mt.ID,
		&mt.MetricKey,
		&mt.DisplayName,
		&mt.Description,
		&mt.Unit,
		&mt.IsAccumulative,
		&mt.DefaultValue,
		&mt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find metric type %q: %w", metricKey, err)
	}
	return &mt, nil
}

func (r *PgxMetricRepository) FindMetricTypes(ctx context.Context) ([]domain.MetricType, error) {
	query := `
		SELECT id, metric_key, display_name, description, unit, is_accumulative, default_value, created_at
		FROM metric_types
		ORDER BY id ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric types: %w", err)
	}
	defer rows.Close()

	types := []domain.MetricType{}
	for rows.Next() {
		var mt domain.MetricType
		err := rows.Scan(
			&mt.ID,
			&mt.MetricKey,
			&mt.DisplayName,
			&mt.Description,
			&mt.Unit,
			&mt.IsAccumulative,
			&mt.DefaultValue,
			&mt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metric type row: %w", err)
		}
		types = append(types, mt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating metric type rows: %w", rows.Err())
	}
	return types, nil
}

func (r *PgxMetricRepository) SaveMetricType(ctx context.Context, metricType domain.MetricType) (domain.MetricType, error) {
	query := `
        INSERT INTO metric_types (metric_key, display_name, description, unit, is_accumulative, default_value)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at;
    `
	err := r.db.QueryRow(ctx, query,
		metricType.MetricKey,
		metricType.DisplayName,
		metricType.Description,
		metricType.Unit,
		metricType.IsAccumulative,
		metricType.DefaultValue,
	).Scan(&metricType.ID, &metricType.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.MetricType{}, fmt.Errorf("metric type %q already registered: %w", metricType.MetricKey, apperrors.ErrDuplicate)
		}
		return domain.MetricType{}, fmt.Errorf("failed to save metric type: %w", err)
	}
	return metricType, nil
}

func (r *PgxMetricRepository) AccumulateMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error) {
	query := `
        INSERT INTO user_metrics (user_id, metric_type, metric_value, metric_date)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, metric_type, metric_date) DO UPDATE SET
            metric_value = user_metrics.metric_value + EXCLUDED.metric_value,
            updated_at = NOW()
        RETURNING id, user_id, metric_type, metric_value, metric_date, created_at, updated_at;
    `
	return r.upsertMetric(ctx, query, userID, metricType, value, day)
}

func (r *PgxMetricRepository) OverwriteMetric(ctx context.Context, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error) {
	query := `
        INSERT INTO user_metrics (user_id, metric_type, metric_value, metric_date)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, metric_type, metric_date) DO UPDATE SET
            metric_value = EXCLUDED.metric_value,
            updated_at = NOW()
        RETURNING id, user_id, metric_type, metric_value, metric_date, created_at, updated_at;
    `
	return r.upsertMetric(ctx, query, userID, metricType, value, day)
}

func (r *PgxMetricRepository) upsertMetric(ctx context.Context, query string, userID int64, metricType string, value int64, day string) (domain.MetricEvent, error) {
	var event domain.MetricEvent
	err := r.db.QueryRow(ctx, query, userID, metricType, value, day).Scan(
		&event.ID,
		&event.UserID,
		&event.MetricType,
		&event.MetricValue,
		&event.MetricDate,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return domain.MetricEvent{}, fmt.Errorf("failed to record metric %q for user %d: %w", metricType, userID, err)
	}
	return event, nil
}

// Optional filters are folded into the predicates: a NULL type array or an
// empty date string disables the corresponding condition.
func (r *PgxMetricRepository) SumMetricsByDay(ctx context.Context, query portsrepo.MetricQuery) ([]domain.MetricDayTotal, error) {
	sqlQuery := `
		SELECT metric_date, metric_type, COALESCE(SUM(metric_value), 0), COUNT(*)
		FROM user_metrics
		WHERE user_id = $1
		  AND ($2::text[] IS NULL OR metric_type = ANY($2))
		  AND ($3 = '' OR metric_date >= $3)
		  AND ($4 = '' OR metric_date <= $4)
		GROUP BY metric_date, metric_type
		ORDER BY metric_date ASC, metric_type ASC;
	`
	rows, err := r.db.Query(ctx, sqlQuery, query.UserID, typesParam(query.Types), query.StartDate, query.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum metrics by day: %w", err)
	}
	defer rows.Close()

	totals := []domain.MetricDayTotal{}
	for rows.Next() {
		var total domain.MetricDayTotal
		if err := rows.Scan(&total.Day, &total.MetricType, &total.TotalValue, &total.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan day total row: %w", err)
		}
		totals = append(totals, total)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating day total rows: %w", rows.Err())
	}
	return totals, nil
}

func (r *PgxMetricRepository) SumMetricsByType(ctx context.Context, query portsrepo.MetricQuery) (map[string]int64, error) {
	sqlQuery := `
		SELECT metric_type, COALESCE(SUM(metric_value), 0)
		FROM user_metrics
		WHERE user_id = $1
		  AND ($2::text[] IS NULL OR metric_type = ANY($2))
		  AND ($3 = '' OR metric_date >= $3)
		  AND ($4 = '' OR metric_date <= $4)
		GROUP BY metric_type;
	`
	rows, err := r.db.Query(ctx, sqlQuery, query.UserID, typesParam(query.Types), query.StartDate, query.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum metrics by type: %w", err)
	}
	defer rows.Close()

	return scanTypeSums(rows)
}

func (r *PgxMetricRepository) FindMetricsOnDay(ctx context.Context, userID int64, types []string, day string) (map[string]int64, error) {
	query := `
		SELECT metric_type, COALESCE(SUM(metric_value), 0)
		FROM user_metrics
		WHERE user_id = $1
		  AND ($2::text[] IS NULL OR metric_type = ANY($2))
		  AND metric_date = $3
		GROUP BY metric_type;
	`
	rows, err := r.db.Query(ctx, query, userID, typesParam(types), day)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics on day %s: %w", day, err)
	}
	defer rows.Close()

	return scanTypeSums(rows)
}

func (r *PgxMetricRepository) CompareUsers(ctx context.Context, userIDs []int64, types []string, startDate, endDate string, limit int) ([]portsrepo.UserComparisonRow, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT m.user_id, u.username, m.metric_type,
		       COALESCE(SUM(m.metric_value), 0),
		       COUNT(DISTINCT m.metric_date),
		       MAX(m.metric_date)
		FROM user_metrics m
		JOIN users u ON u.id = m.user_id
		WHERE m.user_id = ANY($1)
		  AND m.metric_type = ANY($2)
		  AND ($3 = '' OR m.metric_date >= $3)
		  AND ($4 = '' OR m.metric_date <= $4)
		GROUP BY m.user_id, u.username, m.metric_type
		ORDER BY m.user_id ASC, m.metric_type ASC
		LIMIT $5;
	`
	rows, err := r.db.Query(ctx, query, userIDs, types, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query user comparison: %w", err)
	}
	defer rows.Close()

	results := []portsrepo.UserComparisonRow{}
	for rows.Next() {
		var row portsrepo.UserComparisonRow
		err := rows.Scan(
			&row.UserID,
			&row.Username,
			&row.MetricType,
			&row.TotalValue,
			&row.ActiveDays,
			&row.LastRecordDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparison row: %w", err)
		}
		results = append(results, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comparison rows: %w", rows.Err())
	}
	return results, nil
}

func (r *PgxMetricRepository) GetAllUserActivity(ctx context.Context, filter portsrepo.ActivityFilter) ([]domain.UserActivitySummary, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	// Users without metric rows still appear with zero totals.
	query := `
		SELECT u.id, u.username, u.role,
		       COALESCE(SUM(m.metric_value) FILTER (WHERE m.metric_type = 'app_open'), 0),
		       COALESCE(SUM(m.metric_value) FILTER (WHERE m.metric_type = 'task_complete'), 0),
		       COALESCE(SUM(m.metric_value) FILTER (WHERE m.metric_type = 'login_count'), 0),
		       COUNT(DISTINCT m.metric_date),
		       COALESCE(MAX(m.metric_date), '')
		FROM users u
		LEFT JOIN user_metrics m
		  ON m.user_id = u.id
		 AND ($1 = '' OR m.metric_date >= $1)
		 AND ($2 = '' OR m.metric_date <= $2)
		WHERE ($3 = '' OR u.role = $3)
		GROUP BY u.id, u.username, u.role
		ORDER BY 5 DESC, u.id ASC
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, filter.StartDate, filter.EndDate, string(filter.Role), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query user activity: %w", err)
	}
	defer rows.Close()

	summaries := []domain.UserActivitySummary{}
	for rows.Next() {
		var s domain.UserActivitySummary
		err := rows.Scan(
			&s.UserID,
			&s.Username,
			&s.Role,
			&s.TotalAppOpens,
			&s.TotalTaskCompletes,
			&s.TotalLogins,
			&s.ActiveDays,
			&s.LastActiveDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user activity row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user activity rows: %w", rows.Err())
	}
	return summaries, nil
}

func (r *PgxMetricRepository) CountActiveUsers(ctx context.Context, day string) (int64, error) {
	query := `SELECT COUNT(DISTINCT user_id) FROM user_metrics WHERE metric_date = $1;`
	var count int64
	if err := r.db.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active users on %s: %w", day, err)
	}
	return count, nil
}

func (r *PgxMetricRepository) SumMetricOnDay(ctx context.Context, metricType string, day string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(metric_value), 0)
		FROM user_metrics
		WHERE metric_type = $1 AND metric_date = $2;
	`
	var total int64
	if err := r.db.QueryRow(ctx, query, metricType, day).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum metric %q on %s: %w", metricType, day, err)
	}
	return total, nil
}

func (r *PgxMetricRepository) GetDailySeries(ctx context.Context, fromDay string) ([]domain.DashboardDay, error) {
	query := `
		SELECT metric_date,
		       COALESCE(SUM(metric_value) FILTER (WHERE metric_type = 'app_open'), 0),
		       COALESCE(SUM(metric_value) FILTER (WHERE metric_type = 'task_complete'), 0)
		FROM user_metrics
		WHERE metric_date >= $1
		GROUP BY metric_date
		ORDER BY metric_date DESC;
	`
	rows, err := r.db.Query(ctx, query, fromDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily series: %w", err)
	}
	defer rows.Close()

	days := []domain.DashboardDay{}
	for rows.Next() {
		var day domain.DashboardDay
		if err := rows.Scan(&day.Date, &day.DailyOpens, &day.DailyTasks); err != nil {
			return nil, fmt.Errorf("failed to scan daily series row: %w", err)
		}
		days = append(days, day)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily series rows: %w", rows.Err())
	}
	return days, nil
}

func (r *PgxMetricRepository) GetTopUsers(ctx context.Context, fromDay string, limit int) ([]domain.DashboardRank, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT u.username,
		       COALESCE(SUM(m.metric_value) FILTER (WHERE m.metric_type = 'task_complete'), 0) AS total_tasks,
		       COALESCE(SUM(m.metric_value) FILTER (WHERE m.metric_type = 'app_open'), 0) AS total_opens
		FROM user_metrics m
		JOIN users u ON u.id = m.user_id
		WHERE m.metric_date >= $1
		GROUP BY u.username
		ORDER BY total_tasks DESC, total_opens DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, fromDay, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	ranks := []domain.DashboardRank{}
	for rows.Next() {
		var rank domain.DashboardRank
		if err := rows.Scan(&rank.Username, &rank.TotalTasks, &rank.TotalOpens); err != nil {
			return nil, fmt.Errorf("failed to scan top user row: %w", err)
		}
		ranks = append(ranks, rank)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top user rows: %w", rows.Err())
	}
	return ranks, nil
}

// typesParam maps an empty slice to NULL so the type filter is skipped.
func typesParam(types []string) []string {
	if len(types) == 0 {
		return nil
	}
	return types
}

func scanTypeSums(rows pgx.Rows) (map[string]int64, error) {
	sums := map[string]int64{}
	for rows.Next() {
		var metricType string
		var total int64
		if err := rows.Scan(&metricType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan metric sum row: %w", err)
		}
		sums[metricType] = total
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating metric sum rows: %w", rows.Err())
	}
	return sums, nil
}
