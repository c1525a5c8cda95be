package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/store_manager_app/internal/models"
	"github.com/SscSPs/store_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const customerColumns = `customer_id, store_id, name, phone, email, address, allow_credit, credit_limit,
	credit_balance, loyalty_points, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.StoreID,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.AllowCredit,
		&m.CreditLimit,
		&m.CreditBalance,
		&m.LoyaltyPoints,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.StoreID,
		m.Name,
		m.Phone,
		m.Email,
		m.Address,
		m.AllowCredit,
		m.CreditLimit,
		m.CreditBalance,
		m.LoyaltyPoints,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer with ID %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return dbError("failed to save customer "+m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, dbError("failed to find customer "+customerID, err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// ListCustomers retrieves a page of a store's customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, storeID string, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE store_id = $1
		ORDER BY name ASC, customer_id ASC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, dbError("failed to list customers for store "+storeID, err)
	}
	defer rows.Close()

	result := make([]models.Customer, 0, limit)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, dbError("failed to scan customer row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating customer rows", err)
	}
	return mapping.ToDomainCustomerSlice(result), nil
}

// UpdateCustomer updates profile fields. The credit balance is only written by UpdateCustomerBalance.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, allow_credit = $6, credit_limit = $7,
		    loyalty_points = $8, last_updated_at = $9, last_updated_by = $10
		WHERE customer_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.AllowCredit,
		customer.CreditLimit,
		customer.LoyaltyPoints,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return dbError("failed to update customer "+customer.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}

// UpdateCustomerBalance is a compare-and-swap on credit_balance.
func (r *PgxCustomerRepository) UpdateCustomerBalance(ctx context.Context, customerID string, expected, newBalance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET credit_balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE customer_id = $1 AND credit_balance = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, customerID, expected, newBalance, now, userID)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: credit balance cannot go below zero", apperrors.ErrValidation)
		}
		return dbError("failed to update credit balance of customer "+customerID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1);`, customerID).Scan(&exists); err != nil {
		return dbError("failed to check customer "+customerID, err)
	}
	if !exists {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return fmt.Errorf("%w: credit balance of customer %s changed from %s", apperrors.ErrConflict, customerID, expected.String())
}
