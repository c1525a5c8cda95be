package services

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/dto"
)

// CustomerSvcFacade defines customer management operations.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, storeID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// GetCustomer returns apperrors.ErrNotFound when the customer belongs to another store.
	GetCustomer(ctx context.Context, storeID, customerID string) (*domain.Customer, error)

	ListCustomers(ctx context.Context, storeID string, params dto.ListCustomersParams) ([]domain.Customer, error)
}
