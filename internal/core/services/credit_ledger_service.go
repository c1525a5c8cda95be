package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/platform/metrics"
	"github.com/SscSPs/store_manager_app/internal/utils/accounting"
	"github.com/SscSPs/store_manager_app/internal/utils/pagination"
)

// creditLedgerService owns every change to a customer's credit balance.
type creditLedgerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	ledgerRepo   portsrepo.CreditTransactionRepositoryFacade
	atomicWriter portsrepo.CreditLedgerAtomicWriter // nil when the store only offers separate writes
	limitMode    domain.CreditLimitMode
	locks        *keyedMutex
	metrics      *metrics.Metrics
}

// CreditLedgerServiceOption is a functional option for configuring the credit ledger service
type CreditLedgerServiceOption func(*creditLedgerService)

// WithCreditLimitMode selects hard (reject) or advisory (warn and flag) credit limits.
func WithCreditLimitMode(mode domain.CreditLimitMode) CreditLedgerServiceOption {
	return func(s *creditLedgerService) {
		s.limitMode = mode
	}
}

// WithCreditMetrics records ledger writes on m.
func WithCreditMetrics(m *metrics.Metrics) CreditLedgerServiceOption {
	return func(s *creditLedgerService) {
		s.metrics = m
	}
}

// WithoutAtomicWrites forces the two-step write path even when the ledger store supports
// single-transaction writes.
func WithoutAtomicWrites() CreditLedgerServiceOption {
	return func(s *creditLedgerService) {
		s.atomicWriter = nil
	}
}

// NewCreditLedgerService creates a new credit ledger service. If ledgerRepo also implements
// CreditLedgerAtomicWriter, balance updates and ledger appends happen in one transaction.
func NewCreditLedgerService(customerRepo portsrepo.CustomerRepositoryFacade, ledgerRepo portsrepo.CreditTransactionRepositoryFacade, options ...CreditLedgerServiceOption) portssvc.CreditLedgerSvcFacade {
	svc := &creditLedgerService{
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		limitMode:    domain.CreditLimitHard,
		locks:        newKeyedMutex(),
	}
	if atomicWriter, ok := ledgerRepo.(portsrepo.CreditLedgerAtomicWriter); ok {
		svc.atomicWriter = atomicWriter
	}

	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure creditLedgerService implements the CreditLedgerSvcFacade interface
var _ portssvc.CreditLedgerSvcFacade = (*creditLedgerService)(nil)

// ledgerWrite describes one entry to append. amount and limit run while the customer is locked.
type ledgerWrite struct {
	typ           domain.CreditTransactionType
	transactionID *string
	remarks       string
	staffID       string

	// amount resolves the entry amount for the locked customer and may reject the write.
	amount func(ctx context.Context, c *domain.Customer) (decimal.Decimal, error)
	// limit reports whether newBalance is over the customer's limit, or rejects the write.
	limit func(ctx context.Context, c *domain.Customer, newBalance decimal.Decimal) (bool, error)
	// persist runs once every check has passed, before the entry is written.
	persist func(ctx context.Context) error
}

func fixedAmount(amount decimal.Decimal) func(context.Context, *domain.Customer) (decimal.Decimal, error) {
	return func(context.Context, *domain.Customer) (decimal.Decimal, error) {
		return amount, nil
	}
}

func requirePositive(amount decimal.Decimal, what string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s amount must be greater than zero, got %s", apperrors.ErrValidation, what, amount.String())
	}
	return nil
}

// RecordPayment reduces a customer's balance by amount and appends a PAYMENT entry.
func (s *creditLedgerService) RecordPayment(ctx context.Context, storeID, customerID string, amount decimal.Decimal, notes string, staffID string) (*domain.CreditPosting, error) {
	if err := requirePositive(amount, "payment"); err != nil {
		s.metrics.ObserveCreditWrite(string(domain.CreditPayment), metrics.OutcomeRejected)
		return nil, err
	}
	return s.apply(ctx, storeID, customerID, ledgerWrite{
		typ:     domain.CreditPayment,
		remarks: notes,
		staffID: staffID,
		amount:  fixedAmount(amount),
	})
}

// PostSale charges a credit sale to the customer's balance and appends a SALE entry.
// persistSale runs under the customer's lock once the sale is known to be allowed.
func (s *creditLedgerService) PostSale(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID string, staffID string, persistSale func(context.Context) error) (*domain.CreditPosting, error) {
	if err := requirePositive(amount, "sale"); err != nil {
		s.metrics.ObserveCreditWrite(string(domain.CreditSale), metrics.OutcomeRejected)
		return nil, err
	}
	if strings.TrimSpace(transactionID) == "" {
		s.metrics.ObserveCreditWrite(string(domain.CreditSale), metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: credit sale requires a transaction id", apperrors.ErrValidation)
	}
	return s.apply(ctx, storeID, customerID, ledgerWrite{
		typ:           domain.CreditSale,
		transactionID: &transactionID,
		remarks:       "Credit sale",
		staffID:       staffID,
		amount:        fixedAmount(amount),
		limit:         s.checkCreditLimit,
		persist:       persistSale,
	})
}

// RecordRefund reduces the balance by a refunded amount and appends a REFUND entry.
func (s *creditLedgerService) RecordRefund(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID *string, notes string, staffID string) (*domain.CreditPosting, error) {
	if err := requirePositive(amount, "refund"); err != nil {
		s.metrics.ObserveCreditWrite(string(domain.CreditRefund), metrics.OutcomeRejected)
		return nil, err
	}
	if transactionID != nil && *transactionID == "" {
		transactionID = nil
	}
	return s.apply(ctx, storeID, customerID, ledgerWrite{
		typ:           domain.CreditRefund,
		transactionID: transactionID,
		remarks:       notes,
		staffID:       staffID,
		amount:        fixedAmount(amount),
	})
}

// VoidSaleCredit appends a VOID entry reversing the SALE entry recorded for transactionID.
// Payments may already have settled part or all of the sale, so the reversal is capped at
// the outstanding balance; a fully settled sale writes no entry.
func (s *creditLedgerService) VoidSaleCredit(ctx context.Context, storeID, customerID string, transactionID string, staffID string) (*domain.CreditPosting, error) {
	return s.apply(ctx, storeID, customerID, ledgerWrite{
		typ:           domain.CreditVoid,
		transactionID: &transactionID,
		remarks:       "Voided sale " + transactionID,
		staffID:       staffID,
		amount: func(ctx context.Context, c *domain.Customer) (decimal.Decimal, error) {
			entries, err := s.ledgerRepo.ListCreditTransactions(ctx, c.CustomerID)
			if err != nil {
				return decimal.Zero, fmt.Errorf("failed to load credit ledger: %w", err)
			}

			var sale *domain.CreditTransaction
			for i := range entries {
				e := &entries[i]
				if e.TransactionID == nil || *e.TransactionID != transactionID {
					continue
				}
				switch e.Type {
				case domain.CreditVoid:
					return decimal.Zero, fmt.Errorf("%w: credit for sale %s is already voided", apperrors.ErrValidation, transactionID)
				case domain.CreditSale:
					sale = e
				}
			}
			if sale == nil {
				return decimal.Zero, fmt.Errorf("%w: no credit sale entry for transaction %s", apperrors.ErrNotFound, transactionID)
			}
			if sale.Amount.GreaterThan(c.CreditBalance) {
				s.LogWarn(ctx, "Voided credit sale exceeds outstanding balance, reversing only what is owed",
					slog.String("customer_id", c.CustomerID),
					slog.String("transaction_id", transactionID),
					slog.String("sale_amount", sale.Amount.String()),
					slog.String("outstanding", c.CreditBalance.String()))
				return c.CreditBalance, nil
			}
			return sale.Amount, nil
		},
	})
}

// checkCreditLimit enforces allowCredit and the credit limit for SALE entries.
func (s *creditLedgerService) checkCreditLimit(ctx context.Context, c *domain.Customer, newBalance decimal.Decimal) (bool, error) {
	if !c.AllowCredit {
		return false, fmt.Errorf("%w: customer %s is not allowed to buy on credit", apperrors.ErrValidation, c.CustomerID)
	}
	if !newBalance.GreaterThan(c.CreditLimit) {
		return false, nil
	}
	if s.limitMode != domain.CreditLimitAdvisory {
		return false, fmt.Errorf("%w: sale would raise balance to %s, above the credit limit of %s",
			apperrors.ErrValidation, newBalance.String(), c.CreditLimit.String())
	}
	s.LogWarn(ctx, "Credit sale exceeds customer credit limit",
		slog.String("customer_id", c.CustomerID),
		slog.String("credit_limit", c.CreditLimit.String()),
		slog.String("new_balance", newBalance.String()))
	return true, nil
}

// apply runs one ledger write under the customer's lock. The customer must belong to storeID.
func (s *creditLedgerService) apply(ctx context.Context, storeID, customerID string, w ledgerWrite) (*domain.CreditPosting, error) {
	unlock := s.locks.Lock(customerID)
	defer unlock()

	customer, err := s.loadStoreCustomer(ctx, storeID, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customer for credit write",
			slog.String("store_id", storeID),
			slog.String("customer_id", customerID))
		s.metrics.ObserveCreditWrite(string(w.typ), outcomeFor(err))
		return nil, fmt.Errorf("failed to load customer %s: %w", customerID, err)
	}

	amount, err := w.amount(ctx, customer)
	if err != nil {
		s.metrics.ObserveCreditWrite(string(w.typ), outcomeFor(err))
		return nil, err
	}
	if amount.IsZero() {
		// Only a void of a fully settled sale resolves to nothing.
		s.LogInfo(ctx, "Nothing outstanding, no credit entry written",
			slog.String("customer_id", customerID),
			slog.String("type", string(w.typ)))
		return &domain.CreditPosting{Customer: *customer}, nil
	}

	newBalance, err := accounting.ApplyEntry(customer.CreditBalance, amount, w.typ)
	if err != nil {
		s.metrics.ObserveCreditWrite(string(w.typ), metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %s rejected: %v", apperrors.ErrValidation, strings.ToLower(string(w.typ)), err)
	}

	overLimit := false
	if w.limit != nil {
		if overLimit, err = w.limit(ctx, customer, newBalance); err != nil {
			s.metrics.ObserveCreditWrite(string(w.typ), metrics.OutcomeRejected)
			return nil, err
		}
	}

	if w.persist != nil {
		if err := w.persist(ctx); err != nil {
			s.metrics.ObserveCreditWrite(string(w.typ), metrics.OutcomeError)
			return nil, err
		}
	}

	entry := domain.CreditTransaction{
		CreditTransactionID: uuid.NewString(),
		CustomerID:          customer.CustomerID,
		StoreID:             customer.StoreID,
		Amount:              amount,
		Type:                w.typ,
		Remarks:             w.remarks,
		StaffID:             w.staffID,
		TransactionID:       w.transactionID,
		BalanceAfter:        newBalance,
		CreatedAt:           s.Now(),
	}

	var updated *domain.Customer
	if s.atomicWriter != nil {
		updated, err = s.atomicWriter.ApplyCreditEntry(ctx, entry, customer.CreditBalance)
	} else {
		updated, err = s.applyTwoStep(ctx, customer, entry)
	}
	if err != nil {
		s.LogError(ctx, err, "Credit ledger write failed",
			slog.String("customer_id", customerID),
			slog.String("type", string(w.typ)),
			slog.String("amount", amount.String()))
		s.metrics.ObserveCreditWrite(string(w.typ), outcomeFor(err))
		return nil, err
	}

	s.metrics.ObserveCreditWrite(string(w.typ), metrics.OutcomeOK)
	s.LogInfo(ctx, "Credit ledger entry recorded",
		slog.String("customer_id", customerID),
		slog.String("credit_transaction_id", entry.CreditTransactionID),
		slog.String("type", string(w.typ)),
		slog.String("amount", amount.String()),
		slog.String("balance_after", newBalance.String()),
		slog.Bool("over_limit", overLimit))

	return &domain.CreditPosting{Customer: *updated, Entry: entry, OverLimit: overLimit}, nil
}

// applyTwoStep writes the balance with a compare-and-swap and then appends the entry.
// If the append fails the balance is put back; when that is impossible the write is
// reported as partial so the customer can be reconciled.
func (s *creditLedgerService) applyTwoStep(ctx context.Context, customer *domain.Customer, entry domain.CreditTransaction) (*domain.Customer, error) {
	prev := customer.CreditBalance
	now := entry.CreatedAt

	if err := s.customerRepo.UpdateCustomerBalance(ctx, customer.CustomerID, prev, entry.BalanceAfter, entry.StaffID, now); err != nil {
		return nil, fmt.Errorf("failed to update credit balance: %w", err)
	}

	updated := *customer
	updated.CreditBalance = entry.BalanceAfter
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = entry.StaffID

	appendErr := s.ledgerRepo.CreateCreditTransaction(ctx, entry)
	if appendErr == nil {
		return &updated, nil
	}

	// The append may have landed even though the call failed.
	if entries, err := s.ledgerRepo.ListCreditTransactions(ctx, customer.CustomerID); err == nil {
		for _, e := range entries {
			if e.CreditTransactionID == entry.CreditTransactionID {
				s.LogWarn(ctx, "Ledger append reported failure but the entry exists",
					slog.String("credit_transaction_id", entry.CreditTransactionID),
					slog.String("error", appendErr.Error()))
				return &updated, nil
			}
		}
	}

	revertErr := s.customerRepo.UpdateCustomerBalance(ctx, customer.CustomerID, entry.BalanceAfter, prev, entry.StaffID, s.Now())
	if revertErr == nil {
		return nil, fmt.Errorf("failed to append %s entry, balance restored: %w", entry.Type, appendErr)
	}
	s.LogError(ctx, revertErr, "Failed to restore credit balance after ledger append failure",
		slog.String("customer_id", customer.CustomerID))

	current, err := s.customerRepo.FindCustomerByID(ctx, customer.CustomerID)
	if err == nil && current.CreditBalance.Equal(prev) {
		return nil, fmt.Errorf("failed to append %s entry: %w", entry.Type, appendErr)
	}
	return nil, fmt.Errorf("%w: customer %s balance set to %s without its %s entry: %w",
		apperrors.ErrPartialWrite, customer.CustomerID, entry.BalanceAfter.String(), entry.Type, appendErr)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
		return metrics.OutcomeRejected
	case errors.Is(err, apperrors.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, apperrors.ErrPartialWrite):
		return metrics.OutcomePartial
	default:
		return metrics.OutcomeError
	}
}

// loadStoreCustomer returns the customer when it belongs to storeID.
func (s *creditLedgerService) loadStoreCustomer(ctx context.Context, storeID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.StoreID != storeID {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return customer, nil
}

// History returns a page of the customer's ledger, newest first.
func (s *creditLedgerService) History(ctx context.Context, storeID, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if _, err := s.loadStoreCustomer(ctx, storeID, customerID); err != nil {
		return nil, nil, err
	}

	entries, next, err := s.ledgerRepo.ListCreditTransactionsPage(ctx, customerID, pagination.ClampLimit(limit), nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list credit transactions", slog.String("customer_id", customerID))
		return nil, nil, fmt.Errorf("failed to list credit transactions: %w", err)
	}
	return entries, next, nil
}

// Reconcile recomputes the balance from the ledger and compares it with the cached balance.
func (s *creditLedgerService) Reconcile(ctx context.Context, storeID, customerID string) (*domain.CreditReconciliation, error) {
	unlock := s.locks.Lock(customerID)
	defer unlock()

	customer, err := s.loadStoreCustomer(ctx, storeID, customerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.ListCreditTransactions(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load credit ledger for reconciliation", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to load credit ledger: %w", err)
	}

	ledgerBalance := accounting.LedgerBalance(entries)
	result := &domain.CreditReconciliation{
		CustomerID:    customerID,
		StoredBalance: customer.CreditBalance,
		LedgerBalance: ledgerBalance,
		EntryCount:    len(entries),
		Consistent:    ledgerBalance.Equal(customer.CreditBalance),
	}
	if !result.Consistent {
		s.LogWarn(ctx, "Credit balance does not match ledger",
			slog.String("customer_id", customerID),
			slog.String("stored_balance", customer.CreditBalance.String()),
			slog.String("ledger_balance", ledgerBalance.String()))
	}
	return result, nil
}
