package reporting

import (
	"testing"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleInputs() Inputs {
	morning := testDay.Add(9 * time.Hour)

	first := saleAt("t1", morning, 100, domain.SaleCompleted)
	first.CashierID, first.CashierName = "u1", "Ana"
	first.Items = []domain.SaleItem{
		{ProductID: "p1", Name: "Coffee", CategoryID: strPtr("c1"), UnitPrice: decimal.NewFromInt(25), Quantity: 4},
	}

	second := saleAt("t2", morning.Add(time.Hour), 250, domain.SaleCompleted)
	second.CashierID, second.CashierName = "u2", "Ben"
	second.PaymentMethod = domain.PaymentMethodCredit
	second.Discount = decimal.NewFromInt(10)
	second.Items = []domain.SaleItem{
		{ProductID: "p2", Name: "Beans", CategoryID: strPtr("c1"), UnitPrice: decimal.NewFromInt(200), Quantity: 1},
		{ProductID: "p3", Name: "Mug", UnitPrice: decimal.NewFromInt(60), Quantity: 1},
	}

	voided := saleAt("t3", morning.Add(2*time.Hour), 0, domain.SaleVoided)
	voided.CashierID = "u1"
	voided.Items = []domain.SaleItem{{ProductID: "p1", Name: "Coffee", UnitPrice: decimal.NewFromInt(25), Quantity: 2}}

	yesterday := saleAt("t0", testDay.Add(-time.Hour), 999, domain.SaleCompleted)

	return Inputs{
		Transactions: []domain.Transaction{first, second, voided, yesterday},
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Category: "Rent", Amount: decimal.NewFromInt(120), Date: testDay},
			{ExpenseID: "e2", Category: "Supplies", Amount: decimal.NewFromInt(30), Date: testDay.Add(15 * time.Hour)},
			{ExpenseID: "e3", Category: "Rent", Amount: decimal.NewFromInt(500), Date: testDay.AddDate(0, 0, -1),
				AuditFields: domain.AuditFields{CreatedAt: morning}},
		},
		Categories: []domain.Category{{CategoryID: "c1", Name: "Drinks"}},
	}
}

func TestAssemble_TodayTotals(t *testing.T) {
	report := Assemble("s1", testToday, sampleInputs())

	assert.Equal(t, "s1", report.StoreID)
	assert.True(t, decimal.NewFromInt(350).Equal(report.TotalSales), "voided and out-of-range sales are excluded, got %s", report.TotalSales)
	assert.Equal(t, 1, report.TotalVoided)
	assert.Equal(t, 2, report.TransactionCount)
	assert.True(t, decimal.NewFromInt(175).Equal(report.AverageSale))
	assert.True(t, decimal.NewFromInt(150).Equal(report.TotalExpenses), "expense dated yesterday is excluded, got %s", report.TotalExpenses)
	assert.True(t, decimal.NewFromInt(200).Equal(report.NetProfit))
	assert.Equal(t, 6, report.ItemCount)

	assert.True(t, decimal.NewFromInt(10).Equal(report.TotalDiscount))
	require.Len(t, report.Discounts, 1)
	assert.Equal(t, "t2", report.Discounts[0].TransactionID)
}

func TestAssemble_Breakdowns(t *testing.T) {
	report := Assemble("s1", testToday, sampleInputs())

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "c1", report.ByCategory[0].Key)
	assert.Equal(t, "Drinks", report.ByCategory[0].Label)
	assert.True(t, decimal.NewFromInt(300).Equal(report.ByCategory[0].TotalAmount))
	assert.Equal(t, UncategorizedKey, report.ByCategory[1].Key)
	assert.True(t, decimal.NewFromInt(60).Equal(report.ByCategory[1].TotalAmount))

	require.Len(t, report.ByPaymentMethod, 2)
	assert.Equal(t, domain.PaymentMethodCredit, report.ByPaymentMethod[0].Key)

	require.Len(t, report.ByCashier, 2)
	assert.Equal(t, "u2", report.ByCashier[0].Key)
	assert.Equal(t, "Ben", report.ByCashier[0].Label)

	require.Len(t, report.ByItem, 3)
	assert.Equal(t, "Beans", report.ByItem[0].Label)

	require.Len(t, report.ExpenseByCategory, 2)
	assert.Equal(t, "Rent", report.ExpenseByCategory[0].Key)
	assert.True(t, decimal.NewFromInt(120).Equal(report.ExpenseByCategory[0].TotalAmount))
}

func TestAssemble_IdempotentAndPure(t *testing.T) {
	in := sampleInputs()
	snapshot := sampleInputs()

	first := Assemble("s1", testToday, in)
	second := Assemble("s1", testToday, in)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, in, "inputs must not be mutated")
}

func TestAssemble_EmptyInputs(t *testing.T) {
	report := Assemble("s1", testToday, Inputs{})

	assert.True(t, report.TotalSales.IsZero())
	assert.True(t, report.AverageSale.IsZero())
	assert.True(t, report.NetProfit.IsZero())
	assert.Equal(t, 0, report.TransactionCount)
	assert.Empty(t, report.ByCategory)
	assert.NotNil(t, report.Discounts)
}
