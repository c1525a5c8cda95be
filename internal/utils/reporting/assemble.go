package reporting

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedKey is the category bucket for items without a category reference.
const UncategorizedKey = "Uncategorized"

// Inputs are the raw records a summary is built from. Records outside the range are dropped.
type Inputs struct {
	Transactions []domain.Transaction
	Expenses     []domain.Expense
	Categories   []domain.Category // Optional; used to label category rows
}

type itemLine struct {
	key      string
	category string
	amount   decimal.Decimal
}

// Assemble builds a SummaryReport for storeID over r. It has no side effects and does not
// modify its inputs.
func Assemble(storeID string, r domain.DateRange, in Inputs) domain.SummaryReport {
	txns := FilterTransactions(in.Transactions, r)
	expenses := FilterExpenses(in.Expenses, r)

	report := domain.SummaryReport{
		StoreID:       storeID,
		Range:         r,
		TotalSales:    decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalDiscount: decimal.Zero,
		Discounts:     []domain.DiscountLine{},
	}

	completed := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.IsCompleted() {
			report.TotalVoided++
			continue
		}
		completed = append(completed, t)
		report.TotalSales = report.TotalSales.Add(t.Total)
		if t.Discount.IsPositive() {
			report.TotalDiscount = report.TotalDiscount.Add(t.Discount)
			report.Discounts = append(report.Discounts, domain.DiscountLine{
				TransactionID: t.TransactionID,
				CashierName:   t.CashierName,
				Discount:      t.Discount,
				Total:         t.Total,
			})
		}
	}
	report.TransactionCount = len(completed)
	report.AverageSale = domain.GroupTotal{Count: len(completed), TotalAmount: report.TotalSales}.Average()

	for _, e := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
	}
	report.NetProfit = report.TotalSales.Sub(report.TotalExpenses)

	categoryNames := make(map[string]string, len(in.Categories))
	for _, c := range in.Categories {
		categoryNames[c.CategoryID] = c.Name
	}

	cashierNames := make(map[string]string)
	for _, t := range completed {
		if t.CashierName != "" {
			cashierNames[t.CashierID] = t.CashierName
		}
	}

	lines := make([]itemLine, 0)
	productNames := make(map[string]string)
	for _, t := range completed {
		for _, it := range t.Items {
			category := UncategorizedKey
			if it.CategoryID != nil && *it.CategoryID != "" {
				category = *it.CategoryID
			}
			key := it.ProductID
			if key == "" {
				key = it.Name
			}
			if it.Name != "" {
				productNames[key] = it.Name
			}
			lines = append(lines, itemLine{key: key, category: category, amount: it.LineTotal()})
			report.ItemCount += it.Quantity
		}
	}

	report.ByCategory = SortedGroups(
		Aggregate(lines, func(l itemLine) string { return l.category }, func(l itemLine) decimal.Decimal { return l.amount }),
		categoryNames,
	)
	report.ByItem = SortedGroups(
		Aggregate(lines, func(l itemLine) string { return l.key }, func(l itemLine) decimal.Decimal { return l.amount }),
		productNames,
	)
	report.ByPaymentMethod = SortedGroups(
		Aggregate(completed, func(t domain.Transaction) string { return t.PaymentMethod }, saleTotal),
		nil,
	)
	report.ByCashier = SortedGroups(
		Aggregate(completed, func(t domain.Transaction) string { return t.CashierID }, saleTotal),
		cashierNames,
	)
	report.ExpenseByCategory = SortedGroups(
		Aggregate(expenses, func(e domain.Expense) string { return e.Category }, func(e domain.Expense) decimal.Decimal { return e.Amount }),
		nil,
	)

	return report
}

func saleTotal(t domain.Transaction) decimal.Decimal {
	return t.Total
}
