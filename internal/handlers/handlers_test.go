package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/handlers"
	"github.com/SscSPs/store_manager_app/internal/middleware"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type StoreHandlersTestSuite struct {
	suite.Suite
	router        *gin.Engine
	jwtSecret     string
	token         string
	now           time.Time
	mockCustomer  *MockCustomerService
	mockCredit    *MockCreditService
	mockSale      *MockSaleService
	mockExpense   *MockExpenseService
	mockReporting *MockReportingService
}

func TestStoreHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlersTestSuite))
}

// generateTestToken creates a signed JWT for testing.
func (suite *StoreHandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *StoreHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.token = suite.generateTestToken("user-1")
	suite.now = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	suite.mockCustomer = new(MockCustomerService)
	suite.mockCredit = new(MockCreditService)
	suite.mockSale = new(MockSaleService)
	suite.mockExpense = new(MockExpenseService)
	suite.mockReporting = new(MockReportingService)

	resolver := daterange.NewResolver(
		daterange.WithClock(func() time.Time { return suite.now }),
		daterange.WithLocation(time.UTC),
	)
	services := &portssvc.ServiceContainer{
		Customer:  suite.mockCustomer,
		Credit:    suite.mockCredit,
		Sale:      suite.mockSale,
		Expense:   suite.mockExpense,
		Reporting: suite.mockReporting,
	}

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterStoreRoutes(v1, services, resolver, "$")
}

func (suite *StoreHandlersTestSuite) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StoreHandlersTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func (suite *StoreHandlersTestSuite) customer(storeID string) *domain.Customer {
	return &domain.Customer{
		CustomerID:    "cust-1",
		StoreID:       storeID,
		Name:          "Dana",
		AllowCredit:   true,
		CreditLimit:   decimal.NewFromInt(500),
		CreditBalance: decimal.NewFromInt(120),
	}
}

// --- Auth ---

func (suite *StoreHandlersTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stores/store-1/customers", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCustomer.AssertNotCalled(suite.T(), "ListCustomers", mock.Anything, mock.Anything, mock.Anything)
}

// --- Reports ---

func (suite *StoreHandlersTestSuite) TestGetSummary_Success() {
	report := &domain.SummaryReport{
		StoreID:          "store-1",
		Range:            domain.DateRange{Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)},
		TotalSales:       decimal.NewFromInt(100),
		TotalExpenses:    decimal.NewFromInt(30),
		NetProfit:        decimal.NewFromInt(70),
		TransactionCount: 2,
		ByCategory:       []domain.BreakdownRow{{Key: "cat-food", Label: "Food", Count: 1, TotalAmount: decimal.NewFromInt(100)}},
	}
	suite.mockReporting.On("Summary", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.StoreID == "store-1" && q.Filter == domain.FilterThisMonth && q.ViewKey == "store-1:user-1:dashboard"
	}), "user-1").Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/reports/summary?filter=thisMonth", nil, "X-Report-View", "dashboard")

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	summary := body["summary"].(map[string]interface{})
	suite.Equal("$100.00", summary["totalSalesDisplay"])
	suite.Equal("$70.00", summary["netProfitDisplay"])
	suite.Len(body["byCategory"], 1)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestGetSummary_DefaultsToToday() {
	suite.mockReporting.On("Summary", mock.Anything, mock.MatchedBy(func(q domain.ReportQuery) bool {
		return q.Filter == domain.FilterToday && q.From == nil && q.ViewKey == "store-1:user-1:summary"
	}), "user-1").Return(&domain.SummaryReport{StoreID: "store-1"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/reports/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestGetSummary_ErrorMapping() {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown filter", fmt.Errorf("%w: %q", apperrors.ErrInvalidFilter, "fortnight"), http.StatusBadRequest},
		{"superseded", apperrors.ErrStaleReport, http.StatusConflict},
		{"backend down", fmt.Errorf("%w: list sales", apperrors.ErrNetwork), http.StatusBadGateway},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockReporting.On("Summary", mock.Anything, mock.Anything, "user-1").Return(nil, tc.err).Once()

			w := suite.do(http.MethodGet, "/api/v1/stores/store-1/reports/summary?filter=x", nil)

			suite.Equal(tc.code, w.Code)
			suite.Contains(suite.decode(w), "error")
		})
	}
}

func (suite *StoreHandlersTestSuite) TestGetSummary_BadCustomBound() {
	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/reports/summary?filter=custom&from=03/01/2025&to=2025-03-31", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "Summary", mock.Anything, mock.Anything, mock.Anything)
}

// --- Sales ---

func (suite *StoreHandlersTestSuite) TestRecordSale_Credit() {
	customerID := "cust-1"
	sale := &domain.Transaction{
		TransactionID: "txn-1",
		StoreID:       "store-1",
		CashierID:     "user-1",
		CustomerID:    &customerID,
		Total:         decimal.NewFromInt(50),
		PaymentMethod: "Credit",
		Status:        domain.SaleCompleted,
		Items:         []domain.SaleItem{{ProductID: "p1", Name: "Rice", UnitPrice: decimal.NewFromInt(25), Quantity: 2}},
	}
	posting := &domain.CreditPosting{
		Customer: *suite.customer("store-1"),
		Entry:    domain.CreditTransaction{CreditTransactionID: "ct-1", Type: domain.CreditSale, Amount: decimal.NewFromInt(50), BalanceAfter: decimal.NewFromInt(170)},
	}
	suite.mockSale.On("RecordSale", mock.Anything, "store-1", mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
		return req.PaymentMethod == "Credit" && len(req.Items) == 1 && req.Items[0].UnitPrice.Equal(decimal.NewFromInt(25))
	}), "user-1").Return(sale, posting, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/transactions", map[string]interface{}{
		"customerID":    customerID,
		"paymentMethod": "Credit",
		"items":         []map[string]interface{}{{"productID": "p1", "name": "Rice", "unitPrice": 25, "quantity": 2}},
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("$50.00", body["sale"].(map[string]interface{})["totalDisplay"])
	credit := body["credit"].(map[string]interface{})
	suite.Equal("$170.00", credit["entry"].(map[string]interface{})["balanceAfterDisplay"])
	suite.mockSale.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestRecordSale_CashHasNoCreditBlock() {
	sale := &domain.Transaction{TransactionID: "txn-2", StoreID: "store-1", Total: decimal.NewFromInt(10), PaymentMethod: "Cash", Status: domain.SaleCompleted}
	suite.mockSale.On("RecordSale", mock.Anything, "store-1", mock.Anything, "user-1").Return(sale, nil, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/transactions", map[string]interface{}{
		"paymentMethod": "Cash",
		"items":         []map[string]interface{}{{"productID": "p1", "name": "Tea", "unitPrice": "10", "quantity": 1}},
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.NotContains(suite.decode(w), "credit")
}

func (suite *StoreHandlersTestSuite) TestRecordSale_InvalidBody() {
	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"no items", map[string]interface{}{"paymentMethod": "Cash", "items": []interface{}{}}},
		{"no payment method", map[string]interface{}{"items": []map[string]interface{}{{"productID": "p1", "name": "Tea", "unitPrice": 1, "quantity": 1}}}},
		{"zero quantity", map[string]interface{}{"paymentMethod": "Cash", "items": []map[string]interface{}{{"productID": "p1", "name": "Tea", "unitPrice": 1, "quantity": 0}}}},
		{"negative price", map[string]interface{}{"paymentMethod": "Cash", "items": []map[string]interface{}{{"productID": "p1", "name": "Tea", "unitPrice": -1, "quantity": 1}}}},
		{"negative discount", map[string]interface{}{"paymentMethod": "Cash", "discount": -5, "items": []map[string]interface{}{{"productID": "p1", "name": "Tea", "unitPrice": 1, "quantity": 1}}}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/stores/store-1/transactions", tc.body)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockSale.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreHandlersTestSuite) TestRecordSale_CreditLimitExceeded() {
	suite.mockSale.On("RecordSale", mock.Anything, "store-1", mock.Anything, "user-1").
		Return(nil, nil, fmt.Errorf("%w: credit limit exceeded", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/transactions", map[string]interface{}{
		"customerID":    "cust-1",
		"paymentMethod": "Credit",
		"items":         []map[string]interface{}{{"productID": "p1", "name": "TV", "unitPrice": 900, "quantity": 1}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decode(w)["error"], "credit limit exceeded")
}

func (suite *StoreHandlersTestSuite) TestVoidSale() {
	testCases := []struct {
		name     string
		err      error
		code     int
		contains string
	}{
		{"voided", nil, http.StatusOK, ""},
		{"already voided", fmt.Errorf("%w: sale txn-1 is already Voided", apperrors.ErrValidation), http.StatusBadRequest, "already Voided"},
		{"other store", apperrors.ErrNotFound, http.StatusNotFound, ""},
		{"partial", fmt.Errorf("%w: credit reversed but sale not voided: %w", apperrors.ErrPartialWrite, apperrors.ErrConflict), http.StatusInternalServerError, "reconciled"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			if tc.err == nil {
				suite.mockSale.On("VoidSale", mock.Anything, "store-1", "txn-1", "user-1").
					Return(&domain.Transaction{TransactionID: "txn-1", Status: domain.SaleVoided}, nil).Once()
			} else {
				suite.mockSale.On("VoidSale", mock.Anything, "store-1", "txn-1", "user-1").Return(nil, tc.err).Once()
			}

			w := suite.do(http.MethodPost, "/api/v1/stores/store-1/transactions/txn-1/void", nil)

			suite.Equal(tc.code, w.Code, w.Body.String())
			body := suite.decode(w)
			if tc.err == nil {
				suite.Equal("Voided", body["status"])
			} else if tc.contains != "" {
				suite.Contains(body["error"], tc.contains)
			}
		})
	}
}

func (suite *StoreHandlersTestSuite) TestListSales_ResolvesFilter() {
	suite.mockSale.On("ListSales", mock.Anything, "store-1", mock.MatchedBy(func(r domain.DateRange) bool {
		return r.Start.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)) &&
			r.End.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
	})).Return([]domain.Transaction{{TransactionID: "t1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/transactions?filter=yesterday", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Len(suite.decode(w)["sales"], 1)
	suite.mockSale.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestListSales_UnknownFilter() {
	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/transactions?filter=fortnight", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSale.AssertNotCalled(suite.T(), "ListSales", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreHandlersTestSuite) TestListSales_BackendFailure() {
	suite.mockSale.On("ListSales", mock.Anything, "store-1", mock.Anything).
		Return(nil, fmt.Errorf("%w: list sales: connection refused", apperrors.ErrNetwork)).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/transactions", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.NotContains(w.Body.String(), "connection refused")
}

// --- Expenses ---

func (suite *StoreHandlersTestSuite) TestCreateExpense() {
	expense := &domain.Expense{
		ExpenseID: "exp-1",
		StoreID:   "store-1",
		Category:  "Utilities",
		Amount:    decimal.RequireFromString("120.5"),
		Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
	}
	suite.mockExpense.On("CreateExpense", mock.Anything, "store-1", mock.MatchedBy(func(req dto.CreateExpenseRequest) bool {
		return req.Category == "Utilities" && req.Amount.Equal(decimal.RequireFromString("120.5")) && req.Date == "2025-03-03"
	}), "user-1").Return(expense, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/expenses", map[string]interface{}{
		"category": "Utilities",
		"amount":   120.5,
		"date":     "2025-03-03",
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal("$120.50", suite.decode(w)["amountDisplay"])
}

func (suite *StoreHandlersTestSuite) TestCreateExpense_ZeroAmount() {
	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/expenses", map[string]interface{}{
		"category": "Utilities",
		"amount":   0,
		"date":     "2025-03-03",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpense.AssertNotCalled(suite.T(), "CreateExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreHandlersTestSuite) TestUpdateExpense_NotFound() {
	suite.mockExpense.On("UpdateExpense", mock.Anything, "store-1", "exp-9", mock.Anything, "user-1").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/v1/stores/store-1/expenses/exp-9", map[string]interface{}{
		"category": "Rent",
		"amount":   950,
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *StoreHandlersTestSuite) TestListExpenses_CustomRange() {
	suite.mockExpense.On("ListExpenses", mock.Anything, "store-1", mock.MatchedBy(func(r domain.DateRange) bool {
		return r.Start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			r.End.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
	})).Return([]domain.Expense{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/expenses?filter=custom&from=2025-03-01&to=2025-03-31", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.mockExpense.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestListExpenses_InvertedCustomRange() {
	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/expenses?filter=custom&from=2025-03-31&to=2025-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExpense.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything)
}

// --- Customers and credit ---

func (suite *StoreHandlersTestSuite) TestCreateCustomer() {
	suite.mockCustomer.On("CreateCustomer", mock.Anything, "store-1", mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
		return req.Name == "Dana" && req.AllowCredit && req.CreditLimit.Equal(decimal.NewFromInt(500))
	}), "user-1").Return(suite.customer("store-1"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers", map[string]interface{}{
		"name":        "Dana",
		"allowCredit": true,
		"creditLimit": 500,
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("$120.00", body["creditBalanceDisplay"])
	suite.Equal("$380.00", body["availableCreditDisplay"])
}

func (suite *StoreHandlersTestSuite) TestCreateCustomer_NegativeLimit() {
	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers", map[string]interface{}{
		"name":        "Dana",
		"creditLimit": -1,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *StoreHandlersTestSuite) TestListCustomers_PassesPaging() {
	suite.mockCustomer.On("ListCustomers", mock.Anything, "store-1", dto.ListCustomersParams{Limit: 5, Offset: 10}).
		Return([]domain.Customer{*suite.customer("store-1")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/customers?limit=5&offset=10", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Len(suite.decode(w)["customers"], 1)
}

func (suite *StoreHandlersTestSuite) TestRecordPayment_Success() {
	posting := &domain.CreditPosting{
		Customer: *suite.customer("store-1"),
		Entry:    domain.CreditTransaction{Type: domain.CreditPayment, Amount: decimal.RequireFromString("20.5"), BalanceAfter: decimal.RequireFromString("99.5")},
	}
	posting.Customer.CreditBalance = decimal.RequireFromString("99.5")
	suite.mockCredit.On("RecordPayment", mock.Anything, "store-1", "cust-1", decEq("20.5"), "cash at till", "user-1").Return(posting, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers/cust-1/payments", map[string]interface{}{
		"amount": 20.5,
		"notes":  "cash at till",
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("$99.50", body["customer"].(map[string]interface{})["creditBalanceDisplay"])
	suite.mockCredit.AssertExpectations(suite.T())
}

func (suite *StoreHandlersTestSuite) TestRecordPayment_OtherStoresCustomer() {
	suite.mockCredit.On("RecordPayment", mock.Anything, "store-2", "cust-1", mock.Anything, "", "user-1").
		Return(nil, fmt.Errorf("failed to load customer cust-1: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-2/customers/cust-1/payments", map[string]interface{}{"amount": 10})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCredit.AssertExpectations(suite.T())
	suite.mockCustomer.AssertNotCalled(suite.T(), "GetCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreHandlersTestSuite) TestRecordPayment_InvalidAmount() {
	for _, amount := range []interface{}{0, -5, "abc"} {
		w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers/cust-1/payments", map[string]interface{}{"amount": amount})
		suite.Equal(http.StatusBadRequest, w.Code, "amount %v", amount)
	}
	suite.mockCredit.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StoreHandlersTestSuite) TestRecordPayment_ErrorMapping() {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"exceeds balance", fmt.Errorf("%w: payment exceeds balance", apperrors.ErrValidation), http.StatusBadRequest},
		{"lost race", fmt.Errorf("%w: balance changed", apperrors.ErrConflict), http.StatusConflict},
		{"partial write", fmt.Errorf("%w: entry not recorded", apperrors.ErrPartialWrite), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockCredit.On("RecordPayment", mock.Anything, "store-1", "cust-1", mock.Anything, "", "user-1").Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers/cust-1/payments", map[string]interface{}{"amount": 10})

			suite.Equal(tc.code, w.Code)
		})
	}
}

func (suite *StoreHandlersTestSuite) TestRecordRefund() {
	sale := "txn-1"
	suite.mockCredit.On("RecordRefund", mock.Anything, "store-1", "cust-1", decEq("15"), mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == sale
	}), "damaged", "user-1").Return(&domain.CreditPosting{
		Customer: *suite.customer("store-1"),
		Entry:    domain.CreditTransaction{Type: domain.CreditRefund, Amount: decimal.NewFromInt(15), TransactionID: &sale},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/stores/store-1/customers/cust-1/refunds", map[string]interface{}{
		"amount":        15,
		"transactionID": sale,
		"notes":         "damaged",
	})

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal("REFUND", suite.decode(w)["entry"].(map[string]interface{})["type"])
}

func (suite *StoreHandlersTestSuite) TestListCreditTransactions_Paging() {
	next := "next-page"
	suite.mockCredit.On("History", mock.Anything, "store-1", "cust-1", 5, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "page-2"
	})).Return([]domain.CreditTransaction{{CreditTransactionID: "ct-1", Type: domain.CreditSale, Amount: decimal.NewFromInt(10)}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/customers/cust-1/credit-transactions?limit=5&nextToken=page-2", nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("next-page", body["nextToken"])
	suite.Len(body["entries"], 1)
}

func (suite *StoreHandlersTestSuite) TestListCreditTransactions_BadToken() {
	suite.mockCredit.On("History", mock.Anything, "store-1", "cust-1", 20, mock.Anything).
		Return(nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("illegal base64 data"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/customers/cust-1/credit-transactions?nextToken=garbage", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid nextToken", suite.decode(w)["error"])
}

func (suite *StoreHandlersTestSuite) TestReconcile() {
	suite.mockCredit.On("Reconcile", mock.Anything, "store-1", "cust-1").Return(&domain.CreditReconciliation{
		CustomerID:    "cust-1",
		StoredBalance: decimal.NewFromInt(120),
		LedgerBalance: decimal.NewFromInt(100),
		EntryCount:    3,
		Consistent:    false,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stores/store-1/customers/cust-1/reconcile", nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal(false, body["consistent"])
	suite.Equal(float64(3), body["entryCount"])
}
