package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost of a store.
// Date is the day the expense occurred and is what reports filter on; CreatedAt is when it was entered.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	StoreID     string          `json:"storeID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	StaffID     string          `json:"staffID"`
	StaffName   string          `json:"staffName"`
	Date        time.Time       `json:"date"`
	OwnerID     string          `json:"ownerID"`
	AuditFields
}

func (e Expense) Timestamp(field TemporalField) (time.Time, error) {
	switch field {
	case CreatedAt:
		return e.CreatedAt, nil
	case OccurredDate:
		return e.Date, nil
	default:
		return time.Time{}, unsupportedField("expense", field)
	}
}
