package repositories

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a store's expenses. A nil range returns every expense; otherwise
	// the range applies to the expense date.
	ListExpenses(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense replaces amount, category, description, staff name and date, keeping the id.
	UpdateExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
