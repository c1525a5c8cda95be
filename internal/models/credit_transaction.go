package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditTransactionType mirrors the credit_transaction_type column values.
type CreditTransactionType string

const (
	CreditSale    CreditTransactionType = "SALE"
	CreditPayment CreditTransactionType = "PAYMENT"
	CreditRefund  CreditTransactionType = "REFUND"
	CreditVoid    CreditTransactionType = "VOID"
)

// CreditTransaction is a row of the append-only credit_transactions table.
// Rows are never updated, so there are no last_updated columns.
type CreditTransaction struct {
	CreditTransactionID string                `db:"credit_transaction_id"`
	CustomerID          string                `db:"customer_id"`
	StoreID             string                `db:"store_id"`
	Amount              decimal.Decimal       `db:"amount"`
	Type                CreditTransactionType `db:"type"`
	Remarks             string                `db:"remarks"`
	StaffID             string                `db:"staff_id"`
	TransactionID       *string               `db:"transaction_id"` // Nullable
	BalanceAfter        decimal.Decimal       `db:"balance_after"`
	CreatedAt           time.Time             `db:"created_at"`
}
