package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer registers a customer with a zero credit balance.
func (s *customerService) CreateCustomer(ctx context.Context, storeID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	if req.CreditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit limit cannot be negative", apperrors.ErrValidation)
	}

	now := s.Now()
	customer := domain.Customer{
		CustomerID:    uuid.NewString(),
		StoreID:       storeID,
		Name:          name,
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Address:       req.Address,
		AllowCredit:   req.AllowCredit,
		CreditLimit:   req.CreditLimit,
		CreditBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created",
		slog.String("customer_id", customer.CustomerID),
		slog.String("store_id", storeID))
	return &customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, storeID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.StoreID != storeID {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, storeID string, params dto.ListCustomersParams) ([]domain.Customer, error) {
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	customers, err := s.customerRepo.ListCustomers(ctx, storeID, pagination.ClampLimit(params.Limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
