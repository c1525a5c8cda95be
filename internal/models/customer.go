package models

import "github.com/shopspring/decimal"

// Customer is a row of the customers table.
type Customer struct {
	CustomerID    string          `db:"customer_id"`
	StoreID       string          `db:"store_id"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	Email         string          `db:"email"`
	Address       string          `db:"address"`
	AllowCredit   bool            `db:"allow_credit"`
	CreditLimit   decimal.Decimal `db:"credit_limit"`
	CreditBalance decimal.Decimal `db:"credit_balance"` // CHECK (credit_balance >= 0)
	LoyaltyPoints int             `db:"loyalty_points"`
	AuditFields
}
