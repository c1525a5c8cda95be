package dto

import (
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	StaffName   string          `json:"staffName"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD or RFC3339
}

// UpdateExpenseRequest replaces the editable fields of an expense.
type UpdateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	StaffName   string          `json:"staffName"`
	Date        *string         `json:"date"` // Optional; keeps the current date when omitted
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	StoreID       string          `json:"storeID"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	StaffID       string          `json:"staffID"`
	StaffName     string          `json:"staffName"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense, symbol string) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		StoreID:       e.StoreID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		AmountDisplay: utils.FormatMoney(e.Amount, symbol),
		StaffID:       e.StaffID,
		StaffName:     e.StaffName,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}

// ToListExpensesResponse converts a slice of expenses.
func ToListExpensesResponse(expenses []domain.Expense, symbol string) ListExpensesResponse {
	list := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		list[i] = ToExpenseResponse(&expenses[i], symbol)
	}
	return ListExpensesResponse{Expenses: list}
}
