// Package reporting holds the pure filtering, grouping and assembly steps behind store reports.
package reporting

import (
	"fmt"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
)

// Filter returns, in input order, the records whose selected timestamp lies within r (inclusive).
// The input slice is not modified. A record that does not carry the field fails the whole call.
func Filter[T domain.Timestamped](records []T, r domain.DateRange, field domain.TemporalField) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		ts, err := rec.Timestamp(field)
		if err != nil {
			return nil, fmt.Errorf("filter record %d: %w", i, err)
		}
		if r.Contains(ts) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FilterTransactions selects sales by creation time.
func FilterTransactions(txns []domain.Transaction, r domain.DateRange) []domain.Transaction {
	out, _ := Filter(txns, r, domain.CreatedAt) // sales always carry CreatedAt
	return out
}

// FilterExpenses selects expenses by the day they occurred, not when they were entered.
func FilterExpenses(expenses []domain.Expense, r domain.DateRange) []domain.Expense {
	out, _ := Filter(expenses, r, domain.OccurredDate)
	return out
}

// FilterCreditTransactions selects ledger entries by creation time.
func FilterCreditTransactions(entries []domain.CreditTransaction, r domain.DateRange) []domain.CreditTransaction {
	out, _ := Filter(entries, r, domain.CreatedAt)
	return out
}
