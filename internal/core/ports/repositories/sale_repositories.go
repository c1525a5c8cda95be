package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	// FindTransactionByID retrieves a sale with its items.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a store's sales with items. A nil range returns every sale.
	ListTransactions(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Transaction, error)

	// ListCategories retrieves the product categories of a store.
	ListCategories(ctx context.Context, storeID string) ([]domain.Category, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveTransaction persists a sale and its items.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// VoidTransaction moves a Completed sale to Voided. Returns apperrors.ErrConflict if it is not Completed.
	VoidTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
