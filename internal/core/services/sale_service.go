package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/reporting"
)

type saleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	customerSvc portssvc.CustomerSvcFacade
	creditSvc   portssvc.CreditLedgerSvcFacade
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, customerSvc portssvc.CustomerSvcFacade, creditSvc portssvc.CreditLedgerSvcFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		customerSvc: customerSvc,
		creditSvc:   creditSvc,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// RecordSale prices the items, applies the discount and persists the sale.
// A credit sale is saved only after the ledger accepts it; if the ledger write then fails the
// sale is voided again.
func (s *saleService) RecordSale(ctx context.Context, storeID string, req dto.CreateSaleRequest, cashierID string) (*domain.Transaction, *domain.CreditPosting, error) {
	if len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}
	if req.Discount.IsNegative() {
		return nil, nil, fmt.Errorf("%w: discount cannot be negative", apperrors.ErrValidation)
	}

	items := make([]domain.SaleItem, len(req.Items))
	subtotal := decimal.Zero
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: item %d quantity must be greater than zero", apperrors.ErrValidation, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return nil, nil, fmt.Errorf("%w: item %d unit price cannot be negative", apperrors.ErrValidation, i+1)
		}
		items[i] = domain.SaleItem{
			ProductID:  it.ProductID,
			CategoryID: it.CategoryID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		}
		subtotal = subtotal.Add(items[i].LineTotal())
	}
	if req.Discount.GreaterThan(subtotal) {
		return nil, nil, fmt.Errorf("%w: discount %s exceeds subtotal %s", apperrors.ErrValidation, req.Discount.String(), subtotal.String())
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	isCredit := strings.EqualFold(paymentMethod, domain.PaymentMethodCredit)
	if isCredit {
		paymentMethod = domain.PaymentMethodCredit
		if req.CustomerID == nil || *req.CustomerID == "" {
			return nil, nil, fmt.Errorf("%w: credit sales require a customer", apperrors.ErrValidation)
		}
		if _, err := s.customerSvc.GetCustomer(ctx, storeID, *req.CustomerID); err != nil {
			return nil, nil, err
		}
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		StoreID:       storeID,
		CashierID:     cashierID,
		CashierName:   req.CashierName,
		CustomerID:    req.CustomerID,
		Total:         subtotal.Sub(req.Discount),
		Discount:      req.Discount,
		PaymentMethod: paymentMethod,
		Status:        domain.SaleCompleted,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	saved := false
	saveSale := func(ctx context.Context) error {
		if err := s.saleRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to save sale", slog.String("store_id", storeID))
			return fmt.Errorf("failed to save sale: %w", err)
		}
		saved = true
		return nil
	}

	var posting *domain.CreditPosting
	if !isCredit || !txn.Total.IsPositive() {
		if err := saveSale(ctx); err != nil {
			return nil, nil, err
		}
	} else {
		var err error
		posting, err = s.creditSvc.PostSale(ctx, storeID, *req.CustomerID, txn.Total, txn.TransactionID, cashierID, saveSale)
		if err != nil {
			if !saved {
				return nil, nil, err
			}
			if voidErr := s.saleRepo.VoidTransaction(ctx, txn.TransactionID, cashierID, s.Now()); voidErr != nil {
				s.LogError(ctx, voidErr, "Failed to void sale after credit posting failed",
					slog.String("transaction_id", txn.TransactionID))
				return nil, nil, fmt.Errorf("%w: sale %s saved without its credit entry: %w", apperrors.ErrPartialWrite, txn.TransactionID, err)
			}
			return nil, nil, err
		}
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("store_id", storeID),
		slog.String("total", txn.Total.String()),
		slog.String("payment_method", txn.PaymentMethod))
	return &txn, posting, nil
}

// VoidSale reverses what is still owed on a credit sale, then marks the sale Voided.
func (s *saleService) VoidSale(ctx context.Context, storeID, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.saleRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.StoreID != storeID {
		return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, transactionID)
	}
	if !txn.IsCompleted() {
		return nil, fmt.Errorf("%w: sale %s is already %s", apperrors.ErrValidation, transactionID, txn.Status)
	}

	creditReversed := false
	if txn.IsCredit() && txn.CustomerID != nil && txn.Total.IsPositive() {
		posting, err := s.creditSvc.VoidSaleCredit(ctx, storeID, *txn.CustomerID, txn.TransactionID, userID)
		if err != nil {
			return nil, err
		}
		creditReversed = posting != nil && posting.Recorded()
	}

	now := s.Now()
	if err := s.saleRepo.VoidTransaction(ctx, transactionID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void sale", slog.String("transaction_id", transactionID))
		if creditReversed {
			return nil, fmt.Errorf("%w: credit for sale %s reversed but the sale is not voided: %w", apperrors.ErrPartialWrite, transactionID, err)
		}
		return nil, fmt.Errorf("failed to void sale: %w", err)
	}

	voided := *txn
	voided.Status = domain.SaleVoided
	voided.LastUpdatedAt = now
	voided.LastUpdatedBy = userID

	s.LogInfo(ctx, "Sale voided",
		slog.String("transaction_id", transactionID),
		slog.Bool("credit_reversed", creditReversed))
	return &voided, nil
}

func (s *saleService) ListSales(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Transaction, error) {
	txns, err := s.saleRepo.ListTransactions(ctx, storeID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return reporting.FilterTransactions(txns, dateRange), nil
}
