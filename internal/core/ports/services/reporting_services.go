package services

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
)

// ReportingService defines operations for generating store reports
type ReportingService interface {
	// Summary resolves the query's date range and assembles the store summary.
	// A request superseded by a newer one with the same view key fails with apperrors.ErrStaleReport.
	Summary(ctx context.Context, query domain.ReportQuery, userID string) (*domain.SummaryReport, error)
}
