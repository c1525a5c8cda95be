package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/dto"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/SscSPs/store_manager_app/internal/utils/reporting"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	loc         *time.Location
}

// NewExpenseService creates a new ExpenseService. Date-only expense dates are read in loc.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, loc *time.Location) portssvc.ExpenseSvcFacade {
	if loc == nil {
		loc = time.Local
	}
	return &expenseService{expenseRepo: expenseRepo, loc: loc}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, storeID string, req dto.CreateExpenseRequest, staffID string) (*domain.Expense, error) {
	if err := requirePositive(req.Amount, "expense"); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: expense category is required", apperrors.ErrValidation)
	}
	date, err := daterange.ParseDate(req.Date, s.loc)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		StoreID:     storeID,
		Category:    category,
		Description: req.Description,
		Amount:      req.Amount,
		StaffID:     staffID,
		StaffName:   req.StaffName,
		Date:        date,
		OwnerID:     staffID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// UpdateExpense replaces amount, category, description, staff name and optionally date.
func (s *expenseService) UpdateExpense(ctx context.Context, storeID, expenseID string, req dto.UpdateExpenseRequest, staffID string) (*domain.Expense, error) {
	if err := requirePositive(req.Amount, "expense"); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: expense category is required", apperrors.ErrValidation)
	}

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.StoreID != storeID {
		return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}

	updated := *expense
	updated.Category = category
	updated.Description = req.Description
	updated.Amount = req.Amount
	updated.StaffName = req.StaffName
	if req.Date != nil {
		if updated.Date, err = daterange.ParseDate(*req.Date, s.loc); err != nil {
			return nil, err
		}
	}
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = staffID

	if err := s.expenseRepo.UpdateExpense(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &updated, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, storeID string, dateRange domain.DateRange) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, storeID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return reporting.FilterExpenses(expenses, dateRange), nil
}
