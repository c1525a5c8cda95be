package dto

import (
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DateRangeParams are the query parameters shared by date-filtered endpoints.
type DateRangeParams struct {
	Filter string `form:"filter"` // today (default), yesterday, thisWeek, thisMonth, lastMonth, last7Days, last30Days, custom
	From   string `form:"from"`   // YYYY-MM-DD or RFC3339, custom only
	To     string `form:"to"`     // YYYY-MM-DD or RFC3339, custom only
}

// BreakdownRowResponse is one row of a report breakdown.
type BreakdownRowResponse struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Count        int             `json:"count"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	TotalDisplay string          `json:"totalDisplay"`
}

// DiscountLineResponse lists a discounted sale.
type DiscountLineResponse struct {
	TransactionID   string          `json:"transactionID"`
	CashierName     string          `json:"cashierName"`
	Discount        decimal.Decimal `json:"discount"`
	DiscountDisplay string          `json:"discountDisplay"`
	Total           decimal.Decimal `json:"total"`
}

// SummaryReportResponse represents the store summary report response
type SummaryReportResponse struct {
	StoreID string `json:"storeID"`
	From    string `json:"from"`
	To      string `json:"to"`
	Summary struct {
		TotalSales           decimal.Decimal `json:"totalSales"`
		TotalSalesDisplay    string          `json:"totalSalesDisplay"`
		TotalExpenses        decimal.Decimal `json:"totalExpenses"`
		TotalExpensesDisplay string          `json:"totalExpensesDisplay"`
		NetProfit            decimal.Decimal `json:"netProfit"`
		NetProfitDisplay     string          `json:"netProfitDisplay"`
		TotalDiscount        decimal.Decimal `json:"totalDiscount"`
		AverageSale          decimal.Decimal `json:"averageSale"`
		AverageSaleDisplay   string          `json:"averageSaleDisplay"`
		TransactionCount     int             `json:"transactionCount"`
		TotalVoided          int             `json:"totalVoided"`
		ItemCount            int             `json:"itemCount"`
	} `json:"summary"`
	ByCategory        []BreakdownRowResponse `json:"byCategory"`
	ByPaymentMethod   []BreakdownRowResponse `json:"byPaymentMethod"`
	ByCashier         []BreakdownRowResponse `json:"byCashier"`
	ByItem            []BreakdownRowResponse `json:"byItem"`
	ExpenseByCategory []BreakdownRowResponse `json:"expenseByCategory"`
	Discounts         []DiscountLineResponse `json:"discounts"`
}

func toBreakdownRows(rows []domain.BreakdownRow, symbol string) []BreakdownRowResponse {
	out := make([]BreakdownRowResponse, len(rows))
	for i, r := range rows {
		out[i] = BreakdownRowResponse{
			Key:          r.Key,
			Label:        r.Label,
			Count:        r.Count,
			TotalAmount:  r.TotalAmount,
			TotalDisplay: utils.FormatMoney(r.TotalAmount, symbol),
		}
	}
	return out
}

// ToSummaryReportResponse converts a domain.SummaryReport to its response DTO.
func ToSummaryReportResponse(r *domain.SummaryReport, symbol string) SummaryReportResponse {
	resp := SummaryReportResponse{
		StoreID:           r.StoreID,
		From:              r.Range.Start.Format(time.RFC3339Nano),
		To:                r.Range.End.Format(time.RFC3339Nano),
		ByCategory:        toBreakdownRows(r.ByCategory, symbol),
		ByPaymentMethod:   toBreakdownRows(r.ByPaymentMethod, symbol),
		ByCashier:         toBreakdownRows(r.ByCashier, symbol),
		ByItem:            toBreakdownRows(r.ByItem, symbol),
		ExpenseByCategory: toBreakdownRows(r.ExpenseByCategory, symbol),
		Discounts:         make([]DiscountLineResponse, len(r.Discounts)),
	}
	resp.Summary.TotalSales = r.TotalSales
	resp.Summary.TotalSalesDisplay = utils.FormatMoney(r.TotalSales, symbol)
	resp.Summary.TotalExpenses = r.TotalExpenses
	resp.Summary.TotalExpensesDisplay = utils.FormatMoney(r.TotalExpenses, symbol)
	resp.Summary.NetProfit = r.NetProfit
	resp.Summary.NetProfitDisplay = utils.FormatMoney(r.NetProfit, symbol)
	resp.Summary.TotalDiscount = r.TotalDiscount
	resp.Summary.AverageSale = r.AverageSale
	resp.Summary.AverageSaleDisplay = utils.FormatMoney(r.AverageSale, symbol)
	resp.Summary.TransactionCount = r.TransactionCount
	resp.Summary.TotalVoided = r.TotalVoided
	resp.Summary.ItemCount = r.ItemCount

	for i, d := range r.Discounts {
		resp.Discounts[i] = DiscountLineResponse{
			TransactionID:   d.TransactionID,
			CashierName:     d.CashierName,
			Discount:        d.Discount,
			DiscountDisplay: utils.FormatMoney(d.Discount, symbol),
			Total:           d.Total,
		}
	}
	return resp
}
