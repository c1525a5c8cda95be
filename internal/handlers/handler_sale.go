package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sale transactions.
type saleHandler struct {
	saleService    portssvc.SaleSvcFacade
	resolver       *daterange.Resolver
	currencySymbol string
}

func newSaleHandler(ss portssvc.SaleSvcFacade, resolver *daterange.Resolver, currencySymbol string) *saleHandler {
	return &saleHandler{saleService: ss, resolver: resolver, currencySymbol: currencySymbol}
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade, resolver *daterange.Resolver, currencySymbol string) {
	h := newSaleHandler(saleService, resolver, currencySymbol)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listSales)
		transactions.POST("", h.recordSale)
		transactions.POST("/:transaction_id/void", h.voidSale)
	}
}

// recordSale godoc
// @Summary Record a sale
// @Description Persists a completed sale. A paymentMethod of Credit also charges the customer's credit account.
// @Tags transactions
// @Accept json
// @Produce json
// @Param store_id path string true "Store ID"
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.RecordSaleResponse
// @Failure 400 {object} map[string]string "Invalid sale or credit limit exceeded"
// @Failure 404 {object} map[string]string "Customer not found"
// @Failure 409 {object} map[string]string "Concurrent credit update, retry"
// @Failure 500 {object} map[string]string "Partial write, reconcile"
// @Security BearerAuth
// @Router /stores/{store_id}/transactions [post]
func (h *saleHandler) recordSale(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, posting, err := h.saleService.RecordSale(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record sale")
		return
	}

	resp := dto.RecordSaleResponse{Sale: dto.ToSaleResponse(sale, h.currencySymbol)}
	if posting != nil {
		credit := dto.ToCreditPostingResponse(posting, h.currencySymbol)
		resp.Credit = &credit
	}

	logger.Info("Sale recorded",
		slog.String("transaction_id", sale.TransactionID),
		slog.String("payment_method", sale.PaymentMethod),
		slog.String("total", sale.Total.String()))
	c.JSON(http.StatusCreated, resp)
}

// voidSale godoc
// @Summary Void a sale
// @Description Marks the sale Voided and reverses its credit entry when it was a credit sale.
// @Tags transactions
// @Produce json
// @Param store_id path string true "Store ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 409 {object} map[string]string "Sale already voided"
// @Failure 500 {object} map[string]string "Partial write, reconcile"
// @Security BearerAuth
// @Router /stores/{store_id}/transactions/{transaction_id}/void [post]
func (h *saleHandler) voidSale(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	transactionID := c.Param("transaction_id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	sale, err := h.saleService.VoidSale(c.Request.Context(), storeID, transactionID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to void sale")
		return
	}

	logger.Info("Sale voided")
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale, h.currencySymbol))
}

// listSales godoc
// @Summary List sales
// @Tags transactions
// @Produce json
// @Param store_id path string true "Store ID"
// @Param filter query string false "Date range filter" default(today)
// @Param from query string false "Custom range start"
// @Param to query string false "Custom range end"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid filter or range"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/transactions [get]
func (h *saleHandler) listSales(c *gin.Context) {
	storeID, _, logger, ok := requestScope(c)
	if !ok {
		return
	}

	dateRange, err := resolveDateRange(c, h.resolver)
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), storeID, dateRange)
	if err != nil {
		respondError(c, logger, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalesResponse(sales, h.currencySymbol))
}
