package mapping

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/models"
)

// ToModelCreditTransaction converts a domain CreditTransaction to a model CreditTransaction
func ToModelCreditTransaction(d domain.CreditTransaction) models.CreditTransaction {
	return models.CreditTransaction{
		CreditTransactionID: d.CreditTransactionID,
		CustomerID:          d.CustomerID,
		StoreID:             d.StoreID,
		Amount:              d.Amount,
		Type:                models.CreditTransactionType(d.Type),
		Remarks:             d.Remarks,
		StaffID:             d.StaffID,
		TransactionID:       d.TransactionID,
		BalanceAfter:        d.BalanceAfter,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainCreditTransaction converts a model CreditTransaction to a domain CreditTransaction
func ToDomainCreditTransaction(m models.CreditTransaction) domain.CreditTransaction {
	return domain.CreditTransaction{
		CreditTransactionID: m.CreditTransactionID,
		CustomerID:          m.CustomerID,
		StoreID:             m.StoreID,
		Amount:              m.Amount,
		Type:                domain.CreditTransactionType(m.Type),
		Remarks:             m.Remarks,
		StaffID:             m.StaffID,
		TransactionID:       m.TransactionID,
		BalanceAfter:        m.BalanceAfter,
		CreatedAt:           m.CreatedAt,
	}
}

// ToDomainCreditTransactionSlice converts a slice of model CreditTransactions to domain CreditTransactions
func ToDomainCreditTransactionSlice(ms []models.CreditTransaction) []domain.CreditTransaction {
	ds := make([]domain.CreditTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditTransaction(m)
	}
	return ds
}
