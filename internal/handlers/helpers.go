package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/middleware"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
)

// reportViewHeader lets a client name the screen a report request belongs to.
const reportViewHeader = "X-Report-View"

// requestScope pulls the store id, the staff id and a logger enriched with both.
// It writes the error response itself and returns ok=false when either is missing.
func requestScope(c *gin.Context) (storeID, userID string, logger *slog.Logger, ok bool) {
	logger = middleware.GetLoggerFromCtx(c.Request.Context())
	storeID = c.Param("store_id")
	if storeID == "" {
		logger.Error("Store ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Store ID required in path"})
		return "", "", logger, false
	}

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", logger, false
	}

	return storeID, userID, logger.With(slog.String("store_id", storeID)), true
}

// respondError maps a service error to its HTTP status. Client errors echo the
// error text; server errors log it and return a fixed message.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	status := apperrors.StatusCode(err)

	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrPartialWrite):
		logger.Error("Credit write needs manual reconciliation", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg + ": the customer's credit balance must be reconciled"})
	case errors.Is(err, apperrors.ErrNetwork):
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg + ": store backend unavailable"})
	case status >= http.StatusInternalServerError:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
	case errors.As(err, &appErr) && status == appErr.Code:
		logger.Warn(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": appErr.Message})
	default:
		logger.Warn(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// parseDateRangeParams binds the filter/from/to query and parses explicit bounds in loc.
// An empty filter means today.
func parseDateRangeParams(c *gin.Context, loc *time.Location) (domain.FilterName, *time.Time, *time.Time, error) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	filter := domain.FilterName(params.Filter)
	if filter == "" {
		filter = domain.FilterToday
	}

	var from, to *time.Time
	if params.From != "" {
		t, err := daterange.ParseDate(params.From, loc)
		if err != nil {
			return "", nil, nil, err
		}
		from = &t
	}
	if params.To != "" {
		t, err := daterange.ParseDate(params.To, loc)
		if err != nil {
			return "", nil, nil, err
		}
		to = &t
	}
	return filter, from, to, nil
}

// resolveDateRange parses the query and resolves it to a concrete range.
func resolveDateRange(c *gin.Context, resolver *daterange.Resolver) (domain.DateRange, error) {
	filter, from, to, err := parseDateRangeParams(c, resolver.Location())
	if err != nil {
		return domain.DateRange{}, err
	}
	return resolver.Resolve(filter, from, to)
}

// reportViewKey scopes superseding report requests to one store, one user and one screen.
func reportViewKey(c *gin.Context, storeID, userID string) string {
	view := c.GetHeader(reportViewHeader)
	if view == "" {
		view = "summary"
	}
	return storeID + ":" + userID + ":" + view
}
