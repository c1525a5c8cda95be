// Command pos_report prints a store's summary report, or one customer's credit
// ledger, straight from the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/core/services"
	"github.com/SscSPs/store_manager_app/internal/platform/config"
	"github.com/SscSPs/store_manager_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/SscSPs/store_manager_app/pkg/database"
)

func main() {
	storeID := flag.String("store", "", "store id (required)")
	filter := flag.String("filter", string(domain.FilterToday), "date range filter")
	from := flag.String("from", "", "custom range start, YYYY-MM-DD or RFC3339")
	to := flag.String("to", "", "custom range end, YYYY-MM-DD or RFC3339")
	customerID := flag.String("customer", "", "print this customer's credit ledger instead of the summary")
	limit := flag.Int("limit", 50, "ledger entries to print")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *storeID == "" {
		fmt.Fprintln(os.Stderr, "-store is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	resolver := daterange.NewResolver(
		daterange.WithLocation(cfg.Location),
		daterange.WithWeekStart(cfg.WeekStart),
	)
	svc := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), resolver, nil)

	if *customerID != "" {
		entries, _, err := svc.Credit.History(ctx, *storeID, *customerID, *limit, nil)
		if err != nil {
			logger.Error("Failed to load credit ledger", slog.String("error", err.Error()))
			os.Exit(1)
		}
		renderLedger(os.Stdout, entries, cfg.CurrencySymbol, cfg.Location)
		return
	}

	query := domain.ReportQuery{StoreID: *storeID, Filter: domain.FilterName(*filter)}
	if query.From, err = parseBound(*from, cfg.Location); err != nil {
		logger.Error("Invalid -from", slog.String("error", err.Error()))
		os.Exit(2)
	}
	if query.To, err = parseBound(*to, cfg.Location); err != nil {
		logger.Error("Invalid -to", slog.String("error", err.Error()))
		os.Exit(2)
	}

	report, err := svc.Reporting.Summary(ctx, query, "cli")
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		os.Exit(1)
	}
	renderSummary(os.Stdout, report, cfg.CurrencySymbol)
}

func parseBound(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := daterange.ParseDate(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
