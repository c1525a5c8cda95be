package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupTotal is the running count and sum for one aggregation bucket.
type GroupTotal struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Average returns TotalAmount / Count, or zero for an empty group.
func (g GroupTotal) Average() decimal.Decimal {
	if g.Count == 0 {
		return decimal.Zero
	}
	return g.TotalAmount.Div(decimal.NewFromInt(int64(g.Count)))
}

// BreakdownRow is a single labelled row of a report breakdown.
type BreakdownRow struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// DiscountLine is a sale that carried a discount.
type DiscountLine struct {
	TransactionID string          `json:"transactionID"`
	CashierName   string          `json:"cashierName"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

// SummaryReport is the store summary for a date range. It is derived and never persisted.
type SummaryReport struct {
	StoreID          string          `json:"storeID"`
	Range            DateRange       `json:"range"`
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TotalDiscount    decimal.Decimal `json:"totalDiscount"`
	AverageSale      decimal.Decimal `json:"averageSale"`
	TransactionCount int             `json:"transactionCount"`
	TotalVoided      int             `json:"totalVoided"`
	ItemCount        int             `json:"itemCount"`

	ByCategory        []BreakdownRow `json:"byCategory"`
	ByPaymentMethod   []BreakdownRow `json:"byPaymentMethod"`
	ByCashier         []BreakdownRow `json:"byCashier"`
	ByItem            []BreakdownRow `json:"byItem"`
	ExpenseByCategory []BreakdownRow `json:"expenseByCategory"`
	Discounts         []DiscountLine `json:"discounts"`
}

// ReportQuery describes what a caller asked a report for.
type ReportQuery struct {
	StoreID string
	Filter  FilterName
	From    *time.Time // Custom bounds; a midnight time means "whole day"
	To      *time.Time
	ViewKey string // Requests sharing a view key supersede each other
}
