package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/platform/metrics"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/SscSPs/store_manager_app/internal/utils/latest"
	"github.com/SscSPs/store_manager_app/internal/utils/reporting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	saleRepo    portsrepo.SaleReader
	expenseRepo portsrepo.ExpenseReader
	resolver    *daterange.Resolver
	tracker     *latest.Tracker
	metrics     *metrics.Metrics
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportResolver sets the date-range resolver used for filter names.
func WithReportResolver(r *daterange.Resolver) ReportingServiceOption {
	return func(s *reportingService) {
		s.resolver = r
	}
}

// WithReportMetrics records report outcomes on m.
func WithReportMetrics(m *metrics.Metrics) ReportingServiceOption {
	return func(s *reportingService) {
		s.metrics = m
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(saleRepo portsrepo.SaleReader, expenseRepo portsrepo.ExpenseReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		tracker:     latest.NewTracker(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}
	if svc.resolver == nil {
		svc.resolver = daterange.NewResolver()
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Summary builds the store summary for the query's range. Only the newest request per
// view key gets a report; older ones are cancelled and fail with ErrStaleReport.
func (s *reportingService) Summary(ctx context.Context, query domain.ReportQuery, userID string) (*domain.SummaryReport, error) {
	start := time.Now()

	dateRange, err := s.resolver.Resolve(query.Filter, query.From, query.To)
	if err != nil {
		s.metrics.ObserveReport(metrics.OutcomeRejected, time.Since(start))
		return nil, err
	}

	viewKey := query.ViewKey
	if viewKey == "" {
		viewKey = query.StoreID + ":" + userID
	}
	ctx, ticket := s.tracker.Begin(ctx, viewKey)
	defer ticket.Done()

	report, err := s.build(ctx, query.StoreID, dateRange)
	if !ticket.IsLatest() {
		s.LogInfo(ctx, "Discarding superseded report request",
			slog.String("store_id", query.StoreID),
			slog.String("view_key", viewKey))
		s.metrics.ObserveReport(metrics.OutcomeStale, time.Since(start))
		return nil, fmt.Errorf("%w: view %s", apperrors.ErrStaleReport, viewKey)
	}
	if err != nil {
		s.metrics.ObserveReport(metrics.OutcomeError, time.Since(start))
		return nil, err
	}

	s.metrics.ObserveReport(metrics.OutcomeOK, time.Since(start))
	s.LogInfo(ctx, "Summary report generated successfully",
		slog.String("store_id", query.StoreID),
		slog.String("filter", string(query.Filter)),
		slog.String("from", dateRange.Start.Format(time.RFC3339)),
		slog.String("to", dateRange.End.Format(time.RFC3339)),
		slog.Int("transaction_count", report.TransactionCount))
	return report, nil
}

func (s *reportingService) build(ctx context.Context, storeID string, dateRange domain.DateRange) (*domain.SummaryReport, error) {
	txns, err := s.saleRepo.ListTransactions(ctx, storeID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve sales for report", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to retrieve sales: %w", err)
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, storeID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve expenses for report", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	// Category names only label rows; the report is still correct without them.
	categories, err := s.saleRepo.ListCategories(ctx, storeID)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.LogWarn(ctx, "Category lookup failed, using category ids as labels",
			slog.String("store_id", storeID),
			slog.String("error", err.Error()))
		categories = nil
	}

	report := reporting.Assemble(storeID, dateRange, reporting.Inputs{
		Transactions: txns,
		Expenses:     expenses,
		Categories:   categories,
	})
	return &report, nil
}
