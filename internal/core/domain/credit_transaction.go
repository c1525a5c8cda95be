package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreditTransactionType is the kind of a credit ledger entry.
type CreditTransactionType string

const (
	CreditSale    CreditTransactionType = "SALE"
	CreditPayment CreditTransactionType = "PAYMENT"
	CreditRefund  CreditTransactionType = "REFUND"
	CreditVoid    CreditTransactionType = "VOID"
)

func (t CreditTransactionType) IsValid() bool {
	switch t {
	case CreditSale, CreditPayment, CreditRefund, CreditVoid:
		return true
	}
	return false
}

// CreditTransaction is an append-only entry in a customer's credit ledger.
type CreditTransaction struct {
	CreditTransactionID string                `json:"creditTransactionID"`
	CustomerID          string                `json:"customerID"`
	StoreID             string                `json:"storeID"`
	Amount              decimal.Decimal       `json:"amount"` // Always positive; Type carries the direction
	Type                CreditTransactionType `json:"type"`
	Remarks             string                `json:"remarks"`
	StaffID             string                `json:"staffID"`
	TransactionID       *string               `json:"transactionID,omitempty"` // Sale reference, nullable
	BalanceAfter        decimal.Decimal       `json:"balanceAfter"`
	CreatedAt           time.Time             `json:"createdAt"`
}

// SignedAmount is the entry's effect on the balance: +amount for SALE, -amount otherwise.
func (c CreditTransaction) SignedAmount() decimal.Decimal {
	if c.Type == CreditSale {
		return c.Amount
	}
	return c.Amount.Neg()
}

func (c CreditTransaction) Timestamp(field TemporalField) (time.Time, error) {
	if field != CreatedAt {
		return time.Time{}, unsupportedField("credit transaction", field)
	}
	return c.CreatedAt, nil
}

// CreditPosting is the result of a credit ledger write. Entry is the zero value when the
// write had nothing to record.
type CreditPosting struct {
	Customer  Customer          `json:"customer"`
	Entry     CreditTransaction `json:"entry"`
	OverLimit bool              `json:"overLimit"` // Only set when limits are advisory
}

// Recorded reports whether the write appended a ledger entry.
func (p CreditPosting) Recorded() bool {
	return p.Entry.CreditTransactionID != ""
}

// CreditReconciliation compares the cached balance with the balance derived from the ledger.
type CreditReconciliation struct {
	CustomerID    string          `json:"customerID"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	EntryCount    int             `json:"entryCount"`
	Consistent    bool            `json:"consistent"`
}

// CreditLimitMode controls whether a sale that would exceed the credit limit is rejected.
type CreditLimitMode string

const (
	CreditLimitHard     CreditLimitMode = "hard"
	CreditLimitAdvisory CreditLimitMode = "advisory"
)

// ParseCreditLimitMode parses a mode name; an empty string yields the hard mode.
func ParseCreditLimitMode(s string) (CreditLimitMode, error) {
	switch CreditLimitMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", CreditLimitHard:
		return CreditLimitHard, nil
	case CreditLimitAdvisory:
		return CreditLimitAdvisory, nil
	default:
		return "", fmt.Errorf("unknown credit limit mode %q", s)
	}
}
