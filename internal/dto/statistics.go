package dto

// RecordMetricRequest records one metric event. Value defaults to 1 and
// Date to today when omitted.
type RecordMetricRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	MetricType string `json:"metricType" binding:"required"`
	Value      *int64 `json:"value"`
	Date       string `json:"date" binding:"omitempty,datestring"`
}

// RecordMetricsBatchRequest records several metric events independently.
type RecordMetricsBatchRequest struct {
	Metrics []RecordMetricRequest `json:"metrics" binding:"required,min=1,dive"`
}

// BatchItemResult reports the outcome of one item in a batch recording.
type BatchItemResult struct {
	Metric RecordMetricRequest `json:"metric"`
	Result any                 `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// AppOpenRequest records one application open.
type AppOpenRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// TaskCompleteRequest records completed tasks; TaskCount defaults to 1.
type TaskCompleteRequest struct {
	UserID    int64  `json:"userId" binding:"required"`
	TaskCount *int64 `json:"taskCount"`
}

// UserMetricsParams controls the per-user metrics rollup.
type UserMetricsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datestring"`
	EndDate   string `form:"endDate" binding:"omitempty,datestring"`
	GroupBy   string `form:"groupBy,default=day" binding:"omitempty,oneof=day week month year"`
	Limit     int    `form:"limit,default=30"`
}

// ScoreRequest controls the weighted score computation. Weights override
// the default weight table per metric key.
type ScoreRequest struct {
	Weights   map[string]float64 `json:"weights"`
	StartDate string             `json:"startDate" binding:"omitempty,datestring"`
	EndDate   string             `json:"endDate" binding:"omitempty,datestring"`
}

// ComparisonParams controls the cross-user comparison query. UserIDs and
// MetricTypes are comma-separated lists.
type ComparisonParams struct {
	UserIDs     string `form:"userIds" binding:"required"`
	MetricTypes string `form:"metricTypes" binding:"required"`
	StartDate   string `form:"startDate" binding:"omitempty,datestring"`
	EndDate     string `form:"endDate" binding:"omitempty,datestring"`
	Limit       int    `form:"limit,default=50"`
}

// AllStatisticsParams controls the all-users activity listing.
type AllStatisticsParams struct {
	StartDate string `form:"startDate" binding:"omitempty,datestring"`
	EndDate   string `form:"endDate" binding:"omitempty,datestring"`
	Role      string `form:"role" binding:"omitempty,oneof=resource_coordinator tech_manager consultant user"`
	Limit     int    `form:"limit,default=100"`
}

// CreateMetricTypeRequest registers a new metric type.
type CreateMetricTypeRequest struct {
	MetricKey      string `json:"metricKey" binding:"required"`
	DisplayName    string `json:"displayName" binding:"required"`
	Description    string `json:"description"`
	Unit           string `json:"unit"`
	IsAccumulative *bool  `json:"isAccumulative"`
	DefaultValue   int64  `json:"defaultValue"`
}
