package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers and their credit accounts.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	creditService   portssvc.CreditLedgerSvcFacade
	currencySymbol  string
}

// newCustomerHandler creates a new customerHandler.
func newCustomerHandler(cs portssvc.CustomerSvcFacade, ls portssvc.CreditLedgerSvcFacade, currencySymbol string) *customerHandler {
	return &customerHandler{
		customerService: cs,
		creditService:   ls,
		currencySymbol:  currencySymbol,
	}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, creditService portssvc.CreditLedgerSvcFacade, currencySymbol string) {
	h := newCustomerHandler(customerService, creditService, currencySymbol)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customer_id", h.getCustomer)
		customers.POST("/:customer_id/payments", h.recordPayment)
		customers.POST("/:customer_id/refunds", h.recordRefund)
		customers.GET("/:customer_id/credit-transactions", h.listCreditTransactions)
		customers.GET("/:customer_id/reconcile", h.reconcile)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer, h.currencySymbol))
}

// listCustomers godoc
// @Summary List customers of a store
// @Tags customers
// @Produce json
// @Param store_id path string true "Store ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCustomers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), storeID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomersResponse(customers, h.currencySymbol))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /stores/{store_id}/customers/{customer_id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), storeID, c.Param("customer_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer, h.currencySymbol))
}

// recordPayment godoc
// @Summary Record a credit payment
// @Description Reduces the customer's credit balance. The amount may not exceed the balance.
// @Tags credit
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer_id path string true "Customer ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.CreditPostingResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Concurrent update, retry"
// @Failure 500 {object} map[string]string "Partial write, reconcile"
// @Security BearerAuth
// @Router /stores/{store_id}/customers/{customer_id}/payments [post]
func (h *customerHandler) recordPayment(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	customerID := c.Param("customer_id")
	logger = logger.With(slog.String("customer_id", customerID))

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	posting, err := h.creditService.RecordPayment(c.Request.Context(), storeID, customerID, req.Amount, req.Notes, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Credit payment recorded",
		slog.String("amount", req.Amount.String()),
		slog.String("balance_after", posting.Entry.BalanceAfter.String()))
	c.JSON(http.StatusCreated, dto.ToCreditPostingResponse(posting, h.currencySymbol))
}

// recordRefund godoc
// @Summary Record a credit refund
// @Description Reduces the customer's credit balance by a refunded amount, optionally referencing a sale.
// @Tags credit
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer_id path string true "Customer ID"
// @Param refund body dto.RecordRefundRequest true "Refund"
// @Success 201 {object} dto.CreditPostingResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Concurrent update, retry"
// @Security BearerAuth
// @Router /stores/{store_id}/customers/{customer_id}/refunds [post]
func (h *customerHandler) recordRefund(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	customerID := c.Param("customer_id")
	logger = logger.With(slog.String("customer_id", customerID))

	var req dto.RecordRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRefund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	posting, err := h.creditService.RecordRefund(c.Request.Context(), storeID, customerID, req.Amount, req.TransactionID, req.Notes, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record refund")
		return
	}

	logger.Info("Credit refund recorded", slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToCreditPostingResponse(posting, h.currencySymbol))
}

// listCreditTransactions godoc
// @Summary List a customer's credit ledger
// @Description Newest entries first. Pass the returned nextToken to fetch the following page.
// @Tags credit
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer_id path string true "Customer ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListCreditTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid nextToken"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /stores/{store_id}/customers/{customer_id}/credit-transactions [get]
func (h *customerHandler) listCreditTransactions(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListCreditTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCreditTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, next, err := h.creditService.History(c.Request.Context(), storeID, c.Param("customer_id"), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list credit transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCreditTransactionsResponse(entries, next, h.currencySymbol))
}

// reconcile godoc
// @Summary Reconcile a customer's credit balance
// @Description Compares the stored balance with the sum of the ledger.
// @Tags credit
// @Produce json
// @Param store_id path string true "Store ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /stores/{store_id}/customers/{customer_id}/reconcile [get]
func (h *customerHandler) reconcile(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}
	customerID := c.Param("customer_id")

	result, err := h.creditService.Reconcile(c.Request.Context(), storeID, customerID)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile credit balance")
		return
	}

	if !result.Consistent {
		logger.Warn("Credit balance does not match ledger",
			slog.String("customer_id", customerID),
			slog.String("stored", result.StoredBalance.String()),
			slog.String("ledger", result.LedgerBalance.String()))
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(result))
}
