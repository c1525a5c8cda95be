package services

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/dto"
)

// ExpenseSvcFacade defines expense management operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, storeID string, req dto.CreateExpenseRequest, staffID string) (*domain.Expense, error)

	// UpdateExpense replaces the editable fields and keeps the expense id.
	UpdateExpense(ctx context.Context, storeID, expenseID string, req dto.UpdateExpenseRequest, staffID string) (*domain.Expense, error)

	// ListExpenses returns the store's expenses whose date falls within the range.
	ListExpenses(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Expense, error)
}
