package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// decEq matches a decimal argument by value rather than representation.
func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, storeID string, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, storeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomerBalance(ctx context.Context, customerID string, expected, newBalance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, customerID, expected, newBalance, userID, now)
	return args.Error(0)
}

// --- Mock CreditTransactionRepository ---
type MockCreditTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.CreditTransactionRepositoryFacade = (*MockCreditTransactionRepository)(nil)

func (m *MockCreditTransactionRepository) ListCreditTransactions(ctx context.Context, customerID string) ([]domain.CreditTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditTransaction), args.Error(1)
}

func (m *MockCreditTransactionRepository) ListCreditTransactionsPage(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, customerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CreditTransaction), returnedNextToken, args.Error(2)
}

func (m *MockCreditTransactionRepository) CreateCreditTransaction(ctx context.Context, entry domain.CreditTransaction) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockAtomicCreditRepository also offers single-transaction ledger writes.
type MockAtomicCreditRepository struct {
	MockCreditTransactionRepository
}

var _ portsrepo.CreditLedgerAtomicWriter = (*MockAtomicCreditRepository)(nil)

func (m *MockAtomicCreditRepository) ApplyCreditEntry(ctx context.Context, entry domain.CreditTransaction, expectedBalance decimal.Decimal) (*domain.Customer, error) {
	args := m.Called(ctx, entry, expectedBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockSaleRepository) ListTransactions(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, storeID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockSaleRepository) ListCategories(ctx context.Context, storeID string) ([]domain.Category, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockSaleRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockSaleRepository) VoidTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	args := m.Called(ctx, storeID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

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

// --- Mock CreditLedgerService ---
type MockCreditLedgerService struct {
	mock.Mock
}

var _ portssvc.CreditLedgerSvcFacade = (*MockCreditLedgerService)(nil)

func (m *MockCreditLedgerService) postingResult(args mock.Arguments) (*domain.CreditPosting, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditPosting), args.Error(1)
}

func (m *MockCreditLedgerService) RecordPayment(ctx context.Context, storeID, customerID string, amount decimal.Decimal, notes string, staffID string) (*domain.CreditPosting, error) {
	return m.postingResult(m.Called(ctx, storeID, customerID, amount, notes, staffID))
}

// PostSale passes persistSale to the recorded call; use runPersistSale in Run to invoke it.
func (m *MockCreditLedgerService) PostSale(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID string, staffID string, persistSale func(context.Context) error) (*domain.CreditPosting, error) {
	return m.postingResult(m.Called(ctx, storeID, customerID, amount, transactionID, staffID, persistSale))
}

func (m *MockCreditLedgerService) RecordRefund(ctx context.Context, storeID, customerID string, amount decimal.Decimal, transactionID *string, notes string, staffID string) (*domain.CreditPosting, error) {
	return m.postingResult(m.Called(ctx, storeID, customerID, amount, transactionID, notes, staffID))
}

func (m *MockCreditLedgerService) VoidSaleCredit(ctx context.Context, storeID, customerID string, transactionID string, staffID string) (*domain.CreditPosting, error) {
	return m.postingResult(m.Called(ctx, storeID, customerID, transactionID, staffID))
}

func (m *MockCreditLedgerService) History(ctx context.Context, storeID, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, storeID, customerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.CreditTransaction), nil, args.Error(2)
}

func (m *MockCreditLedgerService) Reconcile(ctx context.Context, storeID, customerID string) (*domain.CreditReconciliation, error) {
	args := m.Called(ctx, storeID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditReconciliation), args.Error(1)
}

// runPersistSale calls the persistSale hook passed to MockCreditLedgerService.PostSale.
func runPersistSale(args mock.Arguments) error {
	persist, _ := args.Get(6).(func(context.Context) error)
	if persist == nil {
		return nil
	}
	return persist(args.Get(0).(context.Context))
}

// memoryCreditStore is a thread-safe customer and ledger store with compare-and-swap
// balance updates, used to exercise the service under concurrency.
type memoryCreditStore struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
	entries   []domain.CreditTransaction
	conflicts int
}

func newMemoryCreditStore(customers ...domain.Customer) *memoryCreditStore {
	s := &memoryCreditStore{customers: make(map[string]domain.Customer)}
	for _, c := range customers {
		s.customers[c.CustomerID] = c
	}
	return s
}

var (
	_ portsrepo.CustomerRepositoryFacade          = (*memoryCreditStore)(nil)
	_ portsrepo.CreditTransactionRepositoryFacade = (*memoryCreditStore)(nil)
)

func (s *memoryCreditStore) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (s *memoryCreditStore) ListCustomers(_ context.Context, storeID string, limit int, offset int) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Customer{}
	for _, c := range s.customers {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memoryCreditStore) SaveCustomer(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[customer.CustomerID] = customer
	return nil
}

func (s *memoryCreditStore) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.customers[customer.CustomerID]
	customer.CreditBalance = cur.CreditBalance
	s.customers[customer.CustomerID] = customer
	return nil
}

func (s *memoryCreditStore) UpdateCustomerBalance(_ context.Context, customerID string, expected, newBalance decimal.Decimal, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[customerID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if !c.CreditBalance.Equal(expected) {
		s.conflicts++
		return apperrors.ErrConflict
	}
	c.CreditBalance = newBalance
	c.LastUpdatedAt = now
	c.LastUpdatedBy = userID
	s.customers[customerID] = c
	return nil
}

func (s *memoryCreditStore) ListCreditTransactions(_ context.Context, customerID string) ([]domain.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.CreditTransaction{}
	for _, e := range s.entries {
		if e.CustomerID == customerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryCreditStore) ListCreditTransactionsPage(ctx context.Context, customerID string, limit int, _ *string) ([]domain.CreditTransaction, *string, error) {
	all, _ := s.ListCreditTransactions(ctx, customerID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil, nil
}

func (s *memoryCreditStore) CreateCreditTransaction(_ context.Context, entry domain.CreditTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}
