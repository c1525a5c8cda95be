package dto

import (
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one product line of a sale.
type SaleItemRequest struct {
	ProductID  string          `json:"productID" binding:"required"`
	CategoryID *string         `json:"categoryID"`
	Name       string          `json:"name" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice" binding:"gte=0"`
	Quantity   int             `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest records a checkout. PaymentMethod "Credit" charges the customer's credit account.
type CreateSaleRequest struct {
	CashierName   string            `json:"cashierName"`
	CustomerID    *string           `json:"customerID"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
	Discount      decimal.Decimal   `json:"discount" binding:"gte=0"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse defines the data returned for a sale line.
type SaleItemResponse struct {
	ProductID  string          `json:"productID"`
	CategoryID *string         `json:"categoryID,omitempty"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	TransactionID string             `json:"transactionID"`
	StoreID       string             `json:"storeID"`
	CashierID     string             `json:"cashierID"`
	CashierName   string             `json:"cashierName"`
	CustomerID    *string            `json:"customerID,omitempty"`
	Total         decimal.Decimal    `json:"total"`
	TotalDisplay  string             `json:"totalDisplay"`
	Discount      decimal.Decimal    `json:"discount"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// RecordSaleResponse carries the sale and, for credit sales, the ledger posting.
type RecordSaleResponse struct {
	Sale   SaleResponse           `json:"sale"`
	Credit *CreditPostingResponse `json:"credit,omitempty"`
}

// ListSalesResponse wraps a list of sales.
type ListSalesResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain.Transaction to SaleResponse DTO.
func ToSaleResponse(t *domain.Transaction, symbol string) SaleResponse {
	items := make([]SaleItemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = SaleItemResponse{
			ProductID:  it.ProductID,
			CategoryID: it.CategoryID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			LineTotal:  it.LineTotal(),
		}
	}
	return SaleResponse{
		TransactionID: t.TransactionID,
		StoreID:       t.StoreID,
		CashierID:     t.CashierID,
		CashierName:   t.CashierName,
		CustomerID:    t.CustomerID,
		Total:         t.Total,
		TotalDisplay:  utils.FormatMoney(t.Total, symbol),
		Discount:      t.Discount,
		PaymentMethod: t.PaymentMethod,
		Status:        string(t.Status),
		Items:         items,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListSalesResponse converts a slice of sales.
func ToListSalesResponse(txns []domain.Transaction, symbol string) ListSalesResponse {
	list := make([]SaleResponse, len(txns))
	for i := range txns {
		list[i] = ToSaleResponse(&txns[i], symbol)
	}
	return ListSalesResponse{Sales: list}
}
