package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/huamengwoke/finance_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/huamengwoke/finance_assistant_app/internal/core/ports/services"
	"github.com/huamengwoke/finance_assistant_app/internal/dto"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/statistics", h.getStatistics)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions for a year+month pair, an inclusive date range, or all of them
// @Tags transactions
// @Produce json
// @Param year query int false "Year, paired with month"
// @Param month query int false "Month 1-12, paired with year"
// @Param startDate query string false "Range start YYYY-MM-DD"
// @Param endDate query string false "Range end YYYY-MM-DD"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters"))
		return
	}

	var filter portsrepo.TransactionFilter
	switch {
	case params.Year != 0 && params.Month != 0:
		if params.Month < 1 || params.Month > 12 {
			c.JSON(http.StatusBadRequest, dto.Fail("month must be between 1 and 12"))
			return
		}
		filter.Month = fmt.Sprintf("%04d-%02d", params.Year, params.Month)
	case params.StartDate != "" && params.EndDate != "":
		filter.StartDate = params.StartDate
		filter.EndDate = params.EndDate
	}

	txns, err := h.txnService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.OKList(txns, len(txns)))
}

// getStatistics godoc
// @Summary Category statistics
// @Description Aggregates per-category totals over a date range, split by income and expense
// @Tags transactions
// @Produce json
// @Param startDate query string false "Range start YYYY-MM-DD, defaults to current month"
// @Param endDate query string false "Range end YYYY-MM-DD, defaults to current month"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /transactions/statistics [get]
func (h *transactionHandler) getStatistics(c *gin.Context) {
	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid query parameters"))
		return
	}

	report, err := h.txnService.GetCategoryStatistics(c.Request.Context(), params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, dto.OK(report))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OK(txn))
}

// createTransaction godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("amount, type, categoryId and a YYYY-MM-DD date are required"))
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.OKMessage("transaction created", txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	txnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), txnID, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("transaction updated", txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	txnID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.txnService.DeleteTransaction(c.Request.Context(), txnID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.JSON(http.StatusOK, dto.OKMessage("transaction deleted", nil))
}
