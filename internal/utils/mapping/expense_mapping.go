package mapping

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		StoreID:     d.StoreID,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		StaffID:     d.StaffID,
		StaffName:   d.StaffName,
		ExpenseDate: d.Date,
		OwnerID:     d.OwnerID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		StoreID:     m.StoreID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		StaffID:     m.StaffID,
		StaffName:   m.StaffName,
		Date:        m.ExpenseDate,
		OwnerID:     m.OwnerID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
