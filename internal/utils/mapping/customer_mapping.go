package mapping

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		StoreID:       d.StoreID,
		Name:          d.Name,
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address,
		AllowCredit:   d.AllowCredit,
		CreditLimit:   d.CreditLimit,
		CreditBalance: d.CreditBalance,
		LoyaltyPoints: d.LoyaltyPoints,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		StoreID:       m.StoreID,
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		AllowCredit:   m.AllowCredit,
		CreditLimit:   m.CreditLimit,
		CreditBalance: m.CreditBalance,
		LoyaltyPoints: m.LoyaltyPoints,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
