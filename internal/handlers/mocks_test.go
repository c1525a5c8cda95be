package handlers_test

import (
	"context"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, storeID string, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, storeID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, storeID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, storeID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context, storeID string, params dto.ListCustomersParams) ([]domain.Customer, error) {
	args := m.Called(ctx, storeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock CreditLedgerService ---
type MockCreditService struct {
	mock.Mock
}

func (m *MockCreditService) RecordPayment(ctx context.Context, storeID, customerID string, amount decimal.Decimal, notes string, staffID string) (*domain.CreditPosting, error) {
	args := m.Called(ctx, storeID, customerID, amount, notes, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPosting), args.Error(1)
}
func (m *MockCreditService) PostSale(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID string, staffID string, persistSale func(context.Context) error) (*domain.CreditPosting, error) {
	args := m.Called(ctx, storeID, customerID, amount, transactionID, staffID, persistSale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPosting), args.Error(1)
}
func (m *MockCreditService) RecordRefund(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID *string, notes string, staffID string) (*domain.CreditPosting, error) {
	args := m.Called(ctx, storeID, customerID, amount, transactionID, notes, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPosting), args.Error(1)
}
func (m *MockCreditService) VoidSaleCredit(ctx context.Context, storeID, customerID string, transactionID string, staffID string) (*domain.CreditPosting, error) {
	args := m.Called(ctx, storeID, customerID, transactionID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPosting), args.Error(1)
}
func (m *MockCreditService) History(ctx context.Context, storeID, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, storeID, customerID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.CreditTransaction), next, args.Error(2)
}
func (m *MockCreditService) Reconcile(ctx context.Context, storeID, customerID string) (*domain.CreditReconciliation, error) {
	args := m.Called(ctx, storeID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReconciliation), args.Error(1)
}

var _ portssvc.CreditLedgerSvcFacade = (*MockCreditService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) RecordSale(ctx context.Context, storeID string, req dto.CreateSaleRequest, cashierID string) (*domain.Transaction, *domain.CreditPosting, error) {
	args := m.Called(ctx, storeID, req, cashierID)
	var posting *domain.CreditPosting
	if args.Get(1) != nil {
		posting = args.Get(1).(*domain.CreditPosting)
	}
	if args.Get(0) == nil {
		return nil, posting, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), posting, args.Error(2)
}
func (m *MockSaleService) VoidSale(ctx context.Context, storeID, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, storeID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, storeID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, storeID string, req dto.CreateExpenseRequest, staffID string) (*domain.Expense, error) {
	args := m.Called(ctx, storeID, req, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, storeID, expenseID string, req dto.UpdateExpenseRequest, staffID string) (*domain.Expense, error) {
	args := m.Called(ctx, storeID, expenseID, req, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, storeID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, query domain.ReportQuery, userID string) (*domain.SummaryReport, error) {
	args := m.Called(ctx, query, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
