package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to store expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
	resolver       *daterange.Resolver
	currencySymbol string
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, resolver *daterange.Resolver, currencySymbol string) *expenseHandler {
	return &expenseHandler{expenseService: es, resolver: resolver, currencySymbol: currencySymbol}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, resolver *daterange.Resolver, currencySymbol string) {
	h := newExpenseHandler(expenseService, resolver, currencySymbol)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:expense_id", h.updateExpense)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param expense body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense, h.currencySymbol))
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /stores/{store_id}/expenses/{expense_id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	expenseID := c.Param("expense_id")

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), storeID, expenseID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update expense")
		return
	}

	logger.Info("Expense updated successfully", slog.String("expense_id", expenseID))
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense, h.currencySymbol))
}

// listExpenses godoc
// @Summary List expenses
// @Description Expenses are filtered on the date they were incurred, not when they were entered.
// @Tags expenses
// @Produce json
// @Param store_id path string true "Store ID"
// @Param filter query string false "Date range filter" default(today)
// @Param from query string false "Custom range start"
// @Param to query string false "Custom range end"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} map[string]string "Invalid filter or range"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}

	dateRange, err := resolveDateRange(c, h.resolver)
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), storeID, dateRange)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, h.currencySymbol))
}
