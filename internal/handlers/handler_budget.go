package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget-related routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.getBudgets)
		budgets.GET("/alerts", h.getAlerts)
		budgets.POST("", h.setBudgets)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// getBudgets godoc
// @Summary Monthly budgets with usage
// @Description Returns a month's budget rows with usage derived from expense transactions
// @Tags budgets
// @Produce json
// @Param month query string true "Month YYYY-MM"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) getBudgets(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("month parameter is required"))
		return
	}

	data, err := h.budgetService.GetBudgetsByMonth(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "Failed to retrieve budgets")
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

// getAlerts godoc
// @Summary Budget alerts
// @Description Returns the budget rows whose derived usage has reached their limit
// @Tags budgets
// @Produce json
// @Param month query string true "Month YYYY-MM"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /budgets/alerts [get]
func (h *budgetHandler) getAlerts(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("month parameter is required"))
		return
	}

	alerts, err := h.budgetService.GetBudgetAlerts(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "Failed to retrieve budget alerts")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(alerts, len(alerts)))
}

// setBudgets godoc
// @Summary Set monthly budgets
// @Description Upserts a month's total budget and any per-category limits
// @Tags budgets
// @Accept json
// @Produce json
// @Param budgets body dto.CreateBudgetRequest true "Budget limits"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) setBudgets(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("month in YYYY-MM form is required"))
		return
	}

	if err := h.budgetService.SetBudgets(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to set budgets")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("budgets saved", nil))
}

// updateBudget godoc
// @Summary Update a budget row
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Limits to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	if err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, req); err != nil {
		respondError(c, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("budget updated", nil))
}

// deleteBudget godoc
// @Summary Delete a budget row
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID); err != nil {
		respondError(c, err, "Failed to delete budget")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("budget deleted", nil))
}
