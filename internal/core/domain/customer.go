package domain

import "github.com/shopspring/decimal"

// Customer is a store customer that may buy on credit.
// CreditBalance is a cached running total of the customer's credit ledger.
type Customer struct {
	CustomerID    string          `json:"customerID"`
	StoreID       string          `json:"storeID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	AllowCredit   bool            `json:"allowCredit"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	LoyaltyPoints int             `json:"loyaltyPoints"`
	AuditFields
}

// AvailableCredit is the headroom left under the credit limit. It can be negative
// when advisory limits let a balance run past the limit.
func (c Customer) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CreditBalance)
}
