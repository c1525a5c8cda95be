package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/olekukonko/tablewriter"
)

func renderSummary(w io.Writer, r *domain.SummaryReport, symbol string) {
	fmt.Fprintf(w, "Store %s, %s to %s\n\n", r.StoreID,
		r.Range.Start.Format(time.DateTime), r.Range.End.Format(time.DateTime))

	totals := tablewriter.NewWriter(w)
	totals.SetHeader([]string{"Metric", "Value"})
	totals.Append([]string{"Total sales", utils.FormatMoney(r.TotalSales, symbol)})
	totals.Append([]string{"Total expenses", utils.FormatMoney(r.TotalExpenses, symbol)})
	totals.Append([]string{"Net profit", utils.FormatMoney(r.NetProfit, symbol)})
	totals.Append([]string{"Discounts given", utils.FormatMoney(r.TotalDiscount, symbol)})
	totals.Append([]string{"Average sale", utils.FormatMoney(r.AverageSale, symbol)})
	totals.Append([]string{"Transactions", strconv.Itoa(r.TransactionCount)})
	totals.Append([]string{"Voided", strconv.Itoa(r.TotalVoided)})
	totals.Append([]string{"Items sold", strconv.Itoa(r.ItemCount)})
	totals.Render()

	renderBreakdown(w, "Sales by category", r.ByCategory, symbol)
	renderBreakdown(w, "Sales by payment method", r.ByPaymentMethod, symbol)
	renderBreakdown(w, "Sales by cashier", r.ByCashier, symbol)
	renderBreakdown(w, "Top items", r.ByItem, symbol)
	renderBreakdown(w, "Expenses by category", r.ExpenseByCategory, symbol)
}

func renderBreakdown(w io.Writer, title string, rows []domain.BreakdownRow, symbol string) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Count", "Total"})
	for _, row := range rows {
		table.Append([]string{row.Label, strconv.Itoa(row.Count), utils.FormatMoney(row.TotalAmount, symbol)})
	}
	table.Render()
}

func renderLedger(w io.Writer, entries []domain.CreditTransaction, symbol string, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No credit transactions.")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"When", "Type", "Amount", "Balance", "Sale", "Remarks"})
	for _, e := range entries {
		sale := ""
		if e.TransactionID != nil {
			sale = *e.TransactionID
		}
		table.Append([]string{
			e.CreatedAt.In(loc).Format(time.DateTime),
			string(e.Type),
			utils.FormatMoney(e.SignedAmount(), symbol),
			utils.FormatMoney(e.BalanceAfter, symbol),
			sale,
			e.Remarks,
		})
	}
	table.Render()
}
