package accounting

import (
	"fmt"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerBalance sums the signed effect of every entry. For a consistent customer this equals
// the cached credit balance.
func LedgerBalance(entries []domain.CreditTransaction) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.SignedAmount())
	}
	return balance
}

// ApplyEntry returns the balance after applying an entry of the given type and amount.
// Amounts must be positive, and no entry may take the balance below zero.
func ApplyEntry(balance, amount decimal.Decimal, typ domain.CreditTransactionType) (decimal.Decimal, error) {
	if !typ.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown credit transaction type '%s'", typ)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero, got %s", amount.String())
	}

	next := domain.CreditTransaction{Amount: amount, Type: typ}
	newBalance := balance.Add(next.SignedAmount())
	if newBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s exceeds outstanding balance %s", amount.String(), balance.String())
	}
	return newBalance, nil
}
