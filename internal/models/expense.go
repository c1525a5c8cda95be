package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table. ExpenseDate is the day the cost occurred.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	StoreID     string          `db:"store_id"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	StaffID     string          `db:"staff_id"`
	StaffName   string          `db:"staff_name"`
	ExpenseDate time.Time       `db:"expense_date"`
	OwnerID     string          `db:"owner_id"`
	AuditFields
}
