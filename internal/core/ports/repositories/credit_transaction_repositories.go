package repositories

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditTransactionReader defines read operations for the credit ledger
type CreditTransactionReader interface {
	// ListCreditTransactions returns every ledger entry of a customer, oldest first.
	ListCreditTransactions(ctx context.Context, customerID string) ([]domain.CreditTransaction, error)

	// ListCreditTransactionsPage returns one page of entries, newest first, and the token for the next page.
	ListCreditTransactionsPage(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)
}

// CreditTransactionWriter defines write operations for the credit ledger. Entries are append-only.
type CreditTransactionWriter interface {
	// CreateCreditTransaction appends a ledger entry.
	CreateCreditTransaction(ctx context.Context, entry domain.CreditTransaction) error
}

// CreditLedgerAtomicWriter is implemented by stores that can update the customer balance
// and append the ledger entry in one transaction.
type CreditLedgerAtomicWriter interface {
	// ApplyCreditEntry locks the customer row, checks that its balance still equals
	// expectedBalance, writes entry.BalanceAfter as the new balance and appends entry.
	// Returns apperrors.ErrConflict when the balance moved.
	ApplyCreditEntry(ctx context.Context, entry domain.CreditTransaction, expectedBalance decimal.Decimal) (*domain.Customer, error)
}

// CreditTransactionRepositoryFacade combines all ledger repository interfaces
type CreditTransactionRepositoryFacade interface {
	CreditTransactionReader
	CreditTransactionWriter
}
