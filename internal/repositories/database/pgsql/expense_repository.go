package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/store_manager_app/internal/models"
	"github.com/SscSPs/store_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `expense_id, store_id, category, description, amount, staff_id, staff_name,
	expense_date, owner_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.StoreID,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.StaffID,
		&m.StaffName,
		&m.ExpenseDate,
		&m.OwnerID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.StoreID,
		m.Category,
		m.Description,
		m.Amount,
		m.StaffID,
		m.StaffName,
		m.ExpenseDate,
		m.OwnerID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return dbError("failed to save expense "+m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, dbError("failed to find expense "+expenseID, err)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

// ListExpenses retrieves a store's expenses ordered by expense date. The range applies to expense_date.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE store_id = $1`
	args := []interface{}{storeID}
	if dateRange != nil {
		query += ` AND expense_date BETWEEN $2 AND $3`
		args = append(args, dateRange.Start, dateRange.End)
	}
	query += ` ORDER BY expense_date ASC, created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("failed to query expenses for store "+storeID, err)
	}
	defer rows.Close()

	result := make([]models.Expense, 0)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, dbError("failed to scan expense row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating expense rows", err)
	}
	return mapping.ToDomainExpenseSlice(result), nil
}

// UpdateExpense replaces the editable fields of an expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET category = $2, description = $3, amount = $4, staff_name = $5, expense_date = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Description,
		m.Amount,
		m.StaffName,
		m.ExpenseDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return dbError("failed to update expense "+m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, m.ExpenseID)
	}
	return nil
}
