package domain

import "time"

// Well-known metric keys. Other keys can be registered at runtime through
// the metric_types table.
const (
	MetricAppOpen        = "app_open"
	MetricTaskComplete   = "task_complete"
	MetricTaskSubmit     = "task_submit"
	MetricTaskReviewPass = "task_review_pass"
	MetricTaskReviewFail = "task_review_fail"
	MetricLoginCount     = "login_count"
	MetricOnlineDuration = "online_duration"
	MetricLastActive     = "last_active"
)

// MetricEvent is a per-user, per-day reading of one metric. The
// (UserID, MetricType, MetricDate) triple is unique; repeated recordings
// either accumulate into or overwrite MetricValue depending on the metric
// type's IsAccumulative flag.
type MetricEvent struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	MetricType  string `json:"metricType"`
	MetricValue int64  `json:"metricValue"`
	MetricDate  string `json:"metricDate"`
	Timestamps
}

// MetricType is static metadata describing a metric key.
type MetricType struct {
	ID             int64     `json:"id"`
	MetricKey      string    `json:"metricKey"`
	DisplayName    string    `json:"displayName"`
	Description    string    `json:"description"`
	Unit           string    `json:"unit"`
	IsAccumulative bool      `json:"isAccumulative"`
	DefaultValue   int64     `json:"defaultValue"`
	CreatedAt      time.Time `json:"createdAt"`
}
