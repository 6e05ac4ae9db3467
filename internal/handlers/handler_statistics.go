package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/huamengwoke/finance_assistant_app/internal/core/domain"
	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// statisticsHandler handles HTTP requests related to usage metrics.
type statisticsHandler struct {
	metricsService portssvc.MetricsSvcFacade
}

func newStatisticsHandler(ms portssvc.MetricsSvcFacade) *statisticsHandler {
	return &statisticsHandler{metricsService: ms}
}

// registerStatisticsRoutes registers all metrics/statistics routes.
func registerStatisticsRoutes(rg *gin.RouterGroup, metricsService portssvc.MetricsSvcFacade) {
	h := newStatisticsHandler(metricsService)

	stats := rg.Group("/statistics")
	{
		stats.POST("/app-open", h.recordAppOpen)
		stats.POST("/task-complete", h.recordTaskComplete)
		stats.POST("/record", h.recordMetric)
		stats.POST("/record-batch", h.recordMetricsBatch)
		stats.GET("/user/:userId", h.getUserMetrics)
		stats.GET("/all", h.getAllStatistics)
		stats.GET("/dashboard", h.getDashboard)
		stats.POST("/score/:userId", h.getUserScore)
		stats.GET("/comparison", h.compareUsers)
		stats.GET("/metric-types", h.listMetricTypes)
		stats.POST("/metric-types", h.createMetricType)
	}
}

// recordAppOpen godoc
// @Summary Record an application open
// @Tags statistics
// @Accept json
// @Produce json
// @Param event body dto.AppOpenRequest true "User opening the app"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/app-open [post]
func (h *statisticsHandler) recordAppOpen(c *gin.Context) {
	var req dto.AppOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("userId is required"))
		return
	}

	event, err := h.metricsService.RecordAppOpen(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err, "Failed to record app open")
		return
	}
	c.JSON(http.StatusOK, dto.OK(event))
}

// recordTaskComplete godoc
// @Summary Record completed tasks
// @Tags statistics
// @Accept json
// @Produce json
// @Param event body dto.TaskCompleteRequest true "User and task count, count defaults to 1"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/task-complete [post]
func (h *statisticsHandler) recordTaskComplete(c *gin.Context) {
	var req dto.TaskCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("userId is required"))
		return
	}

	count := int64(1)
	if req.TaskCount != nil {
		count = *req.TaskCount
	}
	event, err := h.metricsService.RecordTaskComplete(c.Request.Context(), req.UserID, count)
	if err != nil {
		respondError(c, err, "Failed to record task completion")
		return
	}
	c.JSON(http.StatusOK, dto.OK(event))
}

// recordMetric godoc
// @Summary Record a metric event
// @Description Applies the metric type's accumulate or overwrite policy
// @Tags statistics
// @Accept json
// @Produce json
// @Param event body dto.RecordMetricRequest true "Metric reading"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/record [post]
func (h *statisticsHandler) recordMetric(c *gin.Context) {
	var req dto.RecordMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("userId and metricType are required"))
		return
	}

	value := int64(1)
	if req.Value != nil {
		value = *req.Value
	}
	event, err := h.metricsService.RecordMetric(c.Request.Context(), req.UserID, req.MetricType, value, req.Date)
	if err != nil {
		respondError(c, err, "Failed to record metric")
		return
	}
	c.JSON(http.StatusOK, dto.OK(event))
}

// recordMetricsBatch godoc
// @Summary Record several metric events
// @Description Items are applied independently; failures are reported per item
// @Tags statistics
// @Accept json
// @Produce json
// @Param events body dto.RecordMetricsBatchRequest true "Metric readings"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/record-batch [post]
func (h *statisticsHandler) recordMetricsBatch(c *gin.Context) {
	var req dto.RecordMetricsBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("metrics array is required"))
		return
	}

	results := h.metricsService.RecordMetricsBatch(c.Request.Context(), req.Metrics)
	c.JSON(http.StatusOK, dto.OKList(results, len(results)))
}

// getUserMetrics godoc
// @Summary Per-user metrics rollup
// @Description Today's values, all-time totals and a bucketed history
// @Tags statistics
// @Produce json
// @Param userId path int true "User ID"
// @Param startDate query string false "History start YYYY-MM-DD"
// @Param endDate query string false "History end YYYY-MM-DD"
// @Param groupBy query string false "day, week, month or year"
// @Param limit query int false "Max periods per metric"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/user/{userId} [get]
func (h *statisticsHandler) getUserMetrics(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	var params dto.UserMetricsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters"))
		return
	}

	report, err := h.metricsService.GetUserMetrics(c.Request.Context(), portsrepo.MetricQuery{
		UserID:    userID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     params.Limit,
	}, params.GroupBy)
	if err != nil {
		respondError(c, err, "Failed to retrieve user metrics")
		return
	}
	c.JSON(http.StatusOK, dto.OK(report))
}

// getAllStatistics godoc
// @Summary All-users activity listing
// @Tags statistics
// @Produce json
// @Param startDate query string false "Range start YYYY-MM-DD"
// @Param endDate query string false "Range end YYYY-MM-DD"
// @Param role query string false "Role filter"
// @Param limit query int false "Max rows"
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/all [get]
func (h *statisticsHandler) getAllStatistics(c *gin.Context) {
	var params dto.AllStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters"))
		return
	}

	summaries, err := h.metricsService.GetAllStatistics(c.Request.Context(), portsrepo.ActivityFilter{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Role:      domain.UserRole(params.Role),
		Limit:     params.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to retrieve statistics")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(summaries, len(summaries)))
}

// getDashboard godoc
// @Summary Activity dashboard
// @Description Today's activity, a 7-day series and the 30-day top users
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/dashboard [get]
func (h *statisticsHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.metricsService.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dashboard))
}

// getUserScore godoc
// @Summary Weighted user score
// @Description Computes a weighted activity score; omitted weights fall back to the defaults
// @Tags statistics
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param score body dto.ScoreRequest false "Weights and range"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/score/{userId} [post]
func (h *statisticsHandler) getUserScore(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	var req dto.ScoreRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
			return
		}
	}

	score, err := h.metricsService.GetUserScore(c.Request.Context(), userID, req.Weights, req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err, "Failed to compute score")
		return
	}
	c.JSON(http.StatusOK, dto.OK(score))
}

// compareUsers godoc
// @Summary Compare users across metrics
// @Tags statistics
// @Produce json
// @Param userIds query string true "Comma-separated user IDs"
// @Param metricTypes query string true "Comma-separated metric keys"
// @Param startDate query string false "Range start YYYY-MM-DD"
// @Param endDate query string false "Range end YYYY-MM-DD"
// @Param limit query int false "Max aggregate rows"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/comparison [get]
func (h *statisticsHandler) compareUsers(c *gin.Context) {
	var params dto.ComparisonParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("userIds and metricTypes are required"))
		return
	}

	userIDs, err := parseIDList(params.UserIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("userIds must be a comma-separated list of IDs"))
		return
	}
	types := splitList(params.MetricTypes)

	comparisons, err := h.metricsService.CompareUsers(c.Request.Context(), userIDs, types, params.StartDate, params.EndDate, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to compare users")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(comparisons, len(comparisons)))
}

// listMetricTypes godoc
// @Summary List metric types
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/metric-types [get]
func (h *statisticsHandler) listMetricTypes(c *gin.Context) {
	types, err := h.metricsService.ListMetricTypes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list metric types")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(types, len(types)))
}

// createMetricType godoc
// @Summary Register a metric type
// @Tags statistics
// @Accept json
// @Produce json
// @Param metricType body dto.CreateMetricTypeRequest true "Metric type definition"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/metric-types [post]
func (h *statisticsHandler) createMetricType(c *gin.Context) {
	var req dto.CreateMetricTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("metricKey and displayName are required"))
		return
	}

	mt, err := h.metricsService.CreateMetricType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create metric type")
		return
	}
	c.JSON(http.StatusCreated, dto.OKMessage("metric type created", mt))
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseIDList(raw string) ([]int64, error) {
	parts := splitList(raw)
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
