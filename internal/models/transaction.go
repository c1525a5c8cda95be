package models

import "github.com/shopspring/decimal"

// SaleStatus mirrors the sale_transactions.status column.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "Completed"
	SaleVoided    SaleStatus = "Voided"
)

// SaleTransaction is a row of the sale_transactions table. Items live in sale_items.
type SaleTransaction struct {
	TransactionID string          `db:"transaction_id"`
	StoreID       string          `db:"store_id"`
	CashierID     string          `db:"cashier_id"`
	CashierName   string          `db:"cashier_name"`
	CustomerID    *string         `db:"customer_id"` // Nullable
	Total         decimal.Decimal `db:"total"`
	Discount      decimal.Decimal `db:"discount"`
	PaymentMethod string          `db:"payment_method"`
	Status        SaleStatus      `db:"status"`
	AuditFields
}

// SaleItem is a row of the sale_items table.
type SaleItem struct {
	TransactionID string          `db:"transaction_id"`
	LineNo        int             `db:"line_no"`
	ProductID     string          `db:"product_id"`
	CategoryID    *string         `db:"category_id"` // Nullable
	Name          string          `db:"name"`
	UnitPrice     decimal.Decimal `db:"unit_price"`
	Quantity      int             `db:"quantity"`
}

// Category is a row of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	StoreID    string `db:"store_id"`
	Name       string `db:"name"`
}
