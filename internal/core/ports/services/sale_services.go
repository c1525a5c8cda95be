package services

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/dto"
)

// SaleSvcFacade defines sale recording and listing.
type SaleSvcFacade interface {
	// RecordSale persists a completed sale. Credit sales are also posted to the customer's ledger;
	// the returned posting is nil for every other payment method.
	RecordSale(ctx context.Context, storeID string, req dto.CreateSaleRequest, cashierID string) (*domain.Transaction, *domain.CreditPosting, error)

	// VoidSale marks a sale Voided and reverses its credit entry if it was a credit sale.
	VoidSale(ctx context.Context, storeID, transactionID string, userID string) (*domain.Transaction, error)

	// ListSales returns the store's sales created within the range.
	ListSales(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Transaction, error)
}
