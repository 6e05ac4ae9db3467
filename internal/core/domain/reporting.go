package domain

import "github.com/shopspring/decimal"

// CategoryStat is a per-category aggregate over a date range.
type CategoryStat struct {
	CategoryID       int64           `json:"id"`
	Name             string          `json:"name"`
	Type             CategoryType    `json:"type"`
	Icon             string          `json:"icon"`
	Color            string          `json:"color"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int64           `json:"transactionCount"`
}

// CategoryStatReport splits category aggregates by side and totals them.
type CategoryStatReport struct {
	Categories []CategoryStat      `json:"categories"`
	Income     []CategoryStat      `json:"income"`
	Expense    []CategoryStat      `json:"expense"`
	Summary    CategoryStatSummary `json:"summary"`
}

// CategoryStatSummary is the overall balance for a statistics query.
type CategoryStatSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// MetricDayTotal is one metric's summed value for a single day, as
// returned by the store; period bucketing happens in the service layer.
type MetricDayTotal struct {
	Day         string `json:"day"`
	MetricType  string `json:"metricType"`
	TotalValue  int64  `json:"totalValue"`
	RecordCount int64  `json:"recordCount"`
}

// MetricPeriodPoint is a bucketed history entry for one metric.
type MetricPeriodPoint struct {
	Period      string `json:"period"`
	Value       int64  `json:"value"`
	RecordCount int64  `json:"recordCount"`
}

// UserMetricsReport is the full rollup for a single user.
type UserMetricsReport struct {
	Today   map[string]int64               `json:"today"`
	Total   map[string]int64               `json:"total"`
	History map[string][]MetricPeriodPoint `json:"history"`
}

// MetricScoreDetail explains one metric's contribution to a score.
type MetricScoreDetail struct {
	Value         int64   `json:"value"`
	Weight        float64 `json:"weight"`
	WeightedValue float64 `json:"weightedValue"`
}

// UserScore is the weighted aggregate of a user's metrics over a range.
type UserScore struct {
	UserID     int64                        `json:"userId"`
	TotalScore int64                        `json:"totalScore"`
	Details    map[string]MetricScoreDetail `json:"metricDetails"`
	Weights    map[string]float64           `json:"weights"`
}

// UserMetricStat is one user's total for one metric in a comparison query.
type UserMetricStat struct {
	TotalValue     int64  `json:"totalValue"`
	ActiveDays     int64  `json:"activeDays"`
	LastRecordDate string `json:"lastRecordDate"`
}

// UserComparison groups comparison stats per user.
type UserComparison struct {
	UserID   int64                     `json:"userId"`
	Username string                    `json:"username"`
	Metrics  map[string]UserMetricStat `json:"metrics"`
}

// UserActivitySummary is one row of the all-users statistics listing.
type UserActivitySummary struct {
	UserID             int64    `json:"userId"`
	Username           string   `json:"username"`
	Role               UserRole `json:"role"`
	TotalAppOpens      int64    `json:"totalAppOpens"`
	TotalTaskCompletes int64    `json:"totalTaskCompletes"`
	TotalLogins        int64    `json:"totalLogins"`
	ActiveDays         int64    `json:"activeDays"`
	LastActiveDate     string   `json:"lastActiveDate"`
}

// DashboardDay is one day of the dashboard's recent-activity series.
type DashboardDay struct {
	Date       string `json:"date"`
	DailyOpens int64  `json:"dailyOpens"`
	DailyTasks int64  `json:"dailyTasks"`
}

// DashboardRank is one entry of the dashboard's top-user listing.
type DashboardRank struct {
	Username   string `json:"username"`
	TotalTasks int64  `json:"totalTasks"`
	TotalOpens int64  `json:"totalOpens"`
}

// Dashboard is the aggregate view served at /statistics/dashboard.
type Dashboard struct {
	TodayActiveUsers int64           `json:"todayActiveUsers"`
	TodayTotalTasks  int64           `json:"todayTotalTasks"`
	WeeklyData       []DashboardDay  `json:"weeklyData"`
	TopUsers         []DashboardRank `json:"topUsers"`
}
