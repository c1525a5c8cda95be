package dto

import (
	"time"

	"github.com/SscSPs/store_manager_app/internal/core/domain"
	"github.com/SscSPs/store_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is a customer paying down their credit balance.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Notes  string          `json:"notes"`
}

// RecordRefundRequest credits money back against a customer's balance.
type RecordRefundRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0"`
	TransactionID *string         `json:"transactionID"`
	Notes         string          `json:"notes"`
}

// ListCreditTransactionsParams defines query parameters for ledger history.
type ListCreditTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// CreditTransactionResponse defines the data returned for a ledger entry.
type CreditTransactionResponse struct {
	CreditTransactionID string          `json:"creditTransactionID"`
	CustomerID          string          `json:"customerID"`
	Type                string          `json:"type"`
	Amount              decimal.Decimal `json:"amount"`
	AmountDisplay       string          `json:"amountDisplay"`
	BalanceAfter        decimal.Decimal `json:"balanceAfter"`
	BalanceAfterDisplay string          `json:"balanceAfterDisplay"`
	Remarks             string          `json:"remarks"`
	StaffID             string          `json:"staffID"`
	TransactionID       *string         `json:"transactionID,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// CreditPostingResponse is returned by every ledger write.
type CreditPostingResponse struct {
	Customer  CustomerResponse          `json:"customer"`
	Entry     CreditTransactionResponse `json:"entry"`
	OverLimit bool                      `json:"overLimit"`
}

// ListCreditTransactionsResponse is one page of ledger history.
type ListCreditTransactionsResponse struct {
	Entries   []CreditTransactionResponse `json:"entries"`
	NextToken *string                     `json:"nextToken,omitempty"`
}

// ReconciliationResponse compares cached and derived balances.
type ReconciliationResponse struct {
	CustomerID    string          `json:"customerID"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	EntryCount    int             `json:"entryCount"`
	Consistent    bool            `json:"consistent"`
}

// ToCreditTransactionResponse converts a ledger entry to its response DTO.
func ToCreditTransactionResponse(e *domain.CreditTransaction, symbol string) CreditTransactionResponse {
	return CreditTransactionResponse{
		CreditTransactionID: e.CreditTransactionID,
		CustomerID:          e.CustomerID,
		Type:                string(e.Type),
		Amount:              e.Amount,
		AmountDisplay:       utils.FormatMoney(e.Amount, symbol),
		BalanceAfter:        e.BalanceAfter,
		BalanceAfterDisplay: utils.FormatMoney(e.BalanceAfter, symbol),
		Remarks:             e.Remarks,
		StaffID:             e.StaffID,
		TransactionID:       e.TransactionID,
		CreatedAt:           e.CreatedAt,
	}
}

// ToCreditPostingResponse converts a ledger write result to its response DTO.
func ToCreditPostingResponse(p *domain.CreditPosting, symbol string) CreditPostingResponse {
	return CreditPostingResponse{
		Customer:  ToCustomerResponse(&p.Customer, symbol),
		Entry:     ToCreditTransactionResponse(&p.Entry, symbol),
		OverLimit: p.OverLimit,
	}
}

// ToListCreditTransactionsResponse converts a page of ledger entries.
func ToListCreditTransactionsResponse(entries []domain.CreditTransaction, nextToken *string, symbol string) ListCreditTransactionsResponse {
	list := make([]CreditTransactionResponse, len(entries))
	for i := range entries {
		list[i] = ToCreditTransactionResponse(&entries[i], symbol)
	}
	return ListCreditTransactionsResponse{Entries: list, NextToken: nextToken}
}

func ToReconciliationResponse(r *domain.CreditReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		CustomerID:    r.CustomerID,
		StoredBalance: r.StoredBalance,
		LedgerBalance: r.LedgerBalance,
		EntryCount:    r.EntryCount,
		Consistent:    r.Consistent,
	}
}
