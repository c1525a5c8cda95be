package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus is the lifecycle state of a sale. The only allowed transition is Completed -> Voided.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "Completed"
	SaleVoided    SaleStatus = "Voided"
)

// PaymentMethodCredit marks a sale that is charged to the customer's credit account.
const PaymentMethodCredit = "Credit"

// SaleItem is a single product line of a sale.
type SaleItem struct {
	ProductID  string          `json:"productID"`
	CategoryID *string         `json:"categoryID,omitempty"` // Nullable
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
}

// LineTotal is unitPrice x quantity.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Transaction represents a completed (or later voided) point-of-sale sale.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	StoreID       string          `json:"storeID"`
	CashierID     string          `json:"cashierID"`
	CashierName   string          `json:"cashierName"`
	CustomerID    *string         `json:"customerID,omitempty"` // Required for credit sales
	Total         decimal.Decimal `json:"total"`                // After discount
	Discount      decimal.Decimal `json:"discount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        SaleStatus      `json:"status"`
	Items         []SaleItem      `json:"items"`
	AuditFields
}

func (t Transaction) IsCompleted() bool {
	return t.Status == SaleCompleted
}

// IsCredit reports whether the sale was charged to a customer's credit account.
func (t Transaction) IsCredit() bool {
	return t.PaymentMethod == PaymentMethodCredit
}

// Timestamp implements Timestamped. Sales only carry a creation time.
func (t Transaction) Timestamp(field TemporalField) (time.Time, error) {
	if field != CreatedAt {
		return time.Time{}, unsupportedField("transaction", field)
	}
	return t.CreatedAt, nil
}

// Category is a product category used to label report breakdowns.
type Category struct {
	CategoryID string `json:"categoryID"`
	StoreID    string `json:"storeID"`
	Name       string `json:"name"`
}
