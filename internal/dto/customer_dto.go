package dto

import (
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email" binding:"omitempty,email"`
	Address     string          `json:"address"`
	AllowCredit bool            `json:"allowCredit"`
	CreditLimit decimal.Decimal `json:"creditLimit" binding:"gte=0"`
}

// ListCustomersParams defines query parameters for listing customers.
type ListCustomersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID             string          `json:"customerID"`
	StoreID                string          `json:"storeID"`
	Name                   string          `json:"name"`
	Phone                  string          `json:"phone"`
	Email                  string          `json:"email"`
	Address                string          `json:"address"`
	AllowCredit            bool            `json:"allowCredit"`
	CreditLimit            decimal.Decimal `json:"creditLimit"`
	CreditBalance          decimal.Decimal `json:"creditBalance"`
	CreditBalanceDisplay   string          `json:"creditBalanceDisplay"`
	AvailableCredit        decimal.Decimal `json:"availableCredit"`
	AvailableCreditDisplay string          `json:"availableCreditDisplay"`
	LoyaltyPoints          int             `json:"loyaltyPoints"`
	CreatedAt              time.Time       `json:"createdAt"`
	LastUpdatedAt          time.Time       `json:"lastUpdatedAt"`
}

// ListCustomersResponse wraps a list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer, symbol string) CustomerResponse {
	available := c.AvailableCredit()
	return CustomerResponse{
		CustomerID:             c.CustomerID,
		StoreID:                c.StoreID,
		Name:                   c.Name,
		Phone:                  c.Phone,
		Email:                  c.Email,
		Address:                c.Address,
		AllowCredit:            c.AllowCredit,
		CreditLimit:            c.CreditLimit,
		CreditBalance:          c.CreditBalance,
		CreditBalanceDisplay:   utils.FormatMoney(c.CreditBalance, symbol),
		AvailableCredit:        available,
		AvailableCreditDisplay: utils.FormatMoney(available, symbol),
		LoyaltyPoints:          c.LoyaltyPoints,
		CreatedAt:              c.CreatedAt,
		LastUpdatedAt:          c.LastUpdatedAt,
	}
}

// ToListCustomersResponse converts a slice of domain.Customer to ListCustomersResponse DTO.
func ToListCustomersResponse(customers []domain.Customer, symbol string) ListCustomersResponse {
	list := make([]CustomerResponse, len(customers))
	for i := range customers {
		list[i] = ToCustomerResponse(&customers[i], symbol)
	}
	return ListCustomersResponse{Customers: list}
}
