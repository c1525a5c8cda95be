package mapping

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/models"
)

// ToModelSale splits a domain Transaction into its header row and numbered item rows.
func ToModelSale(d domain.Transaction) (models.SaleTransaction, []models.SaleItem) {
	header := models.SaleTransaction{
		TransactionID: d.TransactionID,
		StoreID:       d.StoreID,
		CashierID:     d.CashierID,
		CashierName:   d.CashierName,
		CustomerID:    d.CustomerID,
		Total:         d.Total,
		Discount:      d.Discount,
		PaymentMethod: d.PaymentMethod,
		Status:        models.SaleStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	items := make([]models.SaleItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.SaleItem{
			TransactionID: d.TransactionID,
			LineNo:        i + 1,
			ProductID:     it.ProductID,
			CategoryID:    it.CategoryID,
			Name:          it.Name,
			UnitPrice:     it.UnitPrice,
			Quantity:      it.Quantity,
		}
	}
	return header, items
}

// ToDomainSale joins a header row with its item rows. Items are kept in the given order.
func ToDomainSale(m models.SaleTransaction, items []models.SaleItem) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		StoreID:       m.StoreID,
		CashierID:     m.CashierID,
		CashierName:   m.CashierName,
		CustomerID:    m.CustomerID,
		Total:         m.Total,
		Discount:      m.Discount,
		PaymentMethod: m.PaymentMethod,
		Status:        domain.SaleStatus(m.Status),
		Items:         make([]domain.SaleItem, len(items)),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	for i, it := range items {
		d.Items[i] = domain.SaleItem{
			ProductID:  it.ProductID,
			CategoryID: it.CategoryID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		}
	}
	return d
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		StoreID:    m.StoreID,
		Name:       m.Name,
	}
}
