package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to store reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	loc              *time.Location
	currencySymbol   string
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, resolver *daterange.Resolver, currencySymbol string) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		loc:              resolver.Location(),
		currencySymbol:   currencySymbol,
	}
}

// registerReportingRoutes registers routes related to store reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, resolver *daterange.Resolver, currencySymbol string) {
	h := newReportingHandler(reportingService, resolver, currencySymbol)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Generate store summary report
// @Description Totals, breakdowns and net profit for the sales and expenses within a date range.
// @Description A request superseded by a newer one for the same view returns 409.
// @Tags reports
// @Produce json
// @Param store_id path string true "Store ID"
// @Param filter query string false "today, yesterday, thisWeek, thisMonth, lastMonth, last7Days, last30Days or custom" default(today)
// @Param from query string false "Custom range start (YYYY-MM-DD or RFC3339)"
// @Param to query string false "Custom range end (YYYY-MM-DD or RFC3339)"
// @Param X-Report-View header string false "Screen the request belongs to"
// @Success 200 {object} dto.SummaryReportResponse
// @Failure 400 {object} map[string]string "Invalid filter or range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Failure 502 {object} map[string]string "Store backend unavailable"
// @Security BearerAuth
// @Router /stores/{store_id}/reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	storeID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	filter, from, to, err := parseDateRangeParams(c, h.loc)
	if err != nil {
		respondError(c, logger, err, "Invalid date range")
		return
	}

	query := domain.ReportQuery{
		StoreID: storeID,
		Filter:  filter,
		From:    from,
		To:      to,
		ViewKey: reportViewKey(c, storeID, userID),
	}
	logger = logger.With(slog.String("filter", string(filter)))
	logger.Info("Received request to generate summary report")

	report, err := h.reportingService.Summary(c.Request.Context(), query, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate summary report")
		return
	}

	logger.Info("Summary report generated successfully",
		slog.Int("transaction_count", report.TransactionCount),
		slog.Int("expense_categories", len(report.ExpenseByCategory)))
	c.JSON(http.StatusOK, dto.ToSummaryReportResponse(report, h.currencySymbol))
}
