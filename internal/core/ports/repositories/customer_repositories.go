package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by id. Returns apperrors.ErrNotFound when missing.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a page of a store's customers ordered by name.
	ListCustomers(ctx context.Context, storeID string, limit int, offset int) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates profile fields. It never touches the credit balance.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomerBalance sets the credit balance to newBalance only if the stored balance
	// still equals expected. Returns apperrors.ErrConflict otherwise.
	UpdateCustomerBalance(ctx context.Context, customerID string, expected, newBalance decimal.Decimal, userID string, now time.Time) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
