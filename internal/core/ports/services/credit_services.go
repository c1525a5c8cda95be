package services

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditLedgerWriterSvc defines the balance-changing ledger operations.
// Every write updates the customer's cached balance and appends exactly one entry.
type CreditLedgerWriterSvc interface {
	// RecordPayment reduces the balance by amount. amount must be > 0 and <= the balance.
	RecordPayment(ctx context.Context, storeID, customerID string, amount decimal.Decimal, notes string, staffID string) (*domain.CreditPosting, error)

	// PostSale charges a sale to the customer's credit account. persistSale, when not nil,
	// runs after allowCredit and the credit limit are checked and before the SALE entry is
	// written; a rejected sale never reaches it.
	PostSale(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID string, staffID string, persistSale func(context.Context) error) (*domain.CreditPosting, error)

	// RecordRefund reduces the balance by a refunded amount, optionally referencing a sale.
	RecordRefund(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID *string, notes string, staffID string) (*domain.CreditPosting, error)

	// VoidSaleCredit reverses what is still owed on a voided sale, at most the sale amount.
	// When nothing is outstanding no entry is written and the posting's Entry is empty.
	// Voiding the same sale twice fails.
	VoidSaleCredit(ctx context.Context, storeID, customerID string, transactionID string, staffID string) (*domain.CreditPosting, error)
}

// CreditLedgerReaderSvc defines read operations over the ledger.
type CreditLedgerReaderSvc interface {
	// History returns a page of ledger entries, newest first.
	History(ctx context.Context, storeID, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)

	// Reconcile compares the cached balance with the sum of the ledger.
	Reconcile(ctx context.Context, storeID, customerID string) (*domain.CreditReconciliation, error)
}

// CreditLedgerSvcFacade combines all credit ledger service interfaces
type CreditLedgerSvcFacade interface {
	CreditLedgerWriterSvc
	CreditLedgerReaderSvc
}
