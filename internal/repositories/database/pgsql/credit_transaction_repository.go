package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/store_manager_app/internal/apperrors"
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/store_manager_app/internal/models"
	"github.com/SscSPs/store_manager_app/internal/utils/mapping"
	"github.com/SscSPs/store_manager_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const creditTransactionColumns = `credit_transaction_id, customer_id, store_id, amount, type, remarks,
	staff_id, transaction_id, balance_after, created_at`

type PgxCreditTransactionRepository struct {
	BaseRepository
}

func newPgxCreditTransactionRepository(pool *pgxpool.Pool) *PgxCreditTransactionRepository {
	return &PgxCreditTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.CreditTransactionRepositoryFacade = (*PgxCreditTransactionRepository)(nil)
	_ portsrepo.CreditLedgerAtomicWriter          = (*PgxCreditTransactionRepository)(nil)
)

func scanCreditTransaction(row pgx.Row) (models.CreditTransaction, error) {
	var m models.CreditTransaction
	err := row.Scan(
		&m.CreditTransactionID,
		&m.CustomerID,
		&m.StoreID,
		&m.Amount,
		&m.Type,
		&m.Remarks,
		&m.StaffID,
		&m.TransactionID,
		&m.BalanceAfter,
		&m.CreatedAt,
	)
	return m, err
}

func insertCreditTransaction(ctx context.Context, db execer, entry domain.CreditTransaction) error {
	m := mapping.ToModelCreditTransaction(entry)
	query := `
		INSERT INTO credit_transactions (` + creditTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := db.Exec(ctx, query,
		m.CreditTransactionID,
		m.CustomerID,
		m.StoreID,
		m.Amount,
		m.Type,
		m.Remarks,
		m.StaffID,
		m.TransactionID,
		m.BalanceAfter,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: credit transaction %s already exists", apperrors.ErrDuplicate, m.CreditTransactionID)
		}
		return dbError("failed to insert credit transaction "+m.CreditTransactionID, err)
	}
	return nil
}

// CreateCreditTransaction appends a ledger entry.
func (r *PgxCreditTransactionRepository) CreateCreditTransaction(ctx context.Context, entry domain.CreditTransaction) error {
	return insertCreditTransaction(ctx, r.Pool, entry)
}

// ListCreditTransactions returns every entry of a customer, oldest first.
func (r *PgxCreditTransactionRepository) ListCreditTransactions(ctx context.Context, customerID string) ([]domain.CreditTransaction, error) {
	query := `
		SELECT ` + creditTransactionColumns + `
		FROM credit_transactions
		WHERE customer_id = $1
		ORDER BY created_at ASC, credit_transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, dbError("failed to query credit transactions for customer "+customerID, err)
	}
	defer rows.Close()

	result := make([]models.CreditTransaction, 0)
	for rows.Next() {
		m, err := scanCreditTransaction(rows)
		if err != nil {
			return nil, dbError("failed to scan credit transaction row", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating credit transaction rows", err)
	}
	return mapping.ToDomainCreditTransactionSlice(result), nil
}

// ListCreditTransactionsPage retrieves a page of entries, newest first, using token-based pagination.
func (r *PgxCreditTransactionRepository) ListCreditTransactionsPage(ctx context.Context, customerID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + creditTransactionColumns + ` FROM credit_transactions WHERE customer_id = $1`
	args := []interface{}{customerID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, credit_transaction_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}
	query += ` ORDER BY created_at DESC, credit_transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, dbError("failed to query credit transactions for customer "+customerID, err)
	}
	defer rows.Close()

	page := make([]models.CreditTransaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanCreditTransaction(rows)
		if err != nil {
			return nil, nil, dbError("failed to scan credit transaction row", err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, dbError("error iterating credit transaction rows", err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CreditTransactionID)
		nextTokenVal = &token
		page = page[:limit]
	}
	return mapping.ToDomainCreditTransactionSlice(page), nextTokenVal, nil
}

// ApplyCreditEntry locks the customer row, checks the balance, writes the new balance and
// appends the entry, all in one transaction.
func (r *PgxCreditTransactionRepository) ApplyCreditEntry(ctx context.Context, entry domain.CreditTransaction, expectedBalance decimal.Decimal) (*domain.Customer, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	lockQuery := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 FOR UPDATE;`
	m, err := scanCustomer(tx.QueryRow(ctx, lockQuery, entry.CustomerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, entry.CustomerID)
		}
		return nil, dbError("failed to lock customer "+entry.CustomerID, err)
	}
	if !m.CreditBalance.Equal(expectedBalance) {
		return nil, fmt.Errorf("%w: credit balance of customer %s is %s, expected %s",
			apperrors.ErrConflict, entry.CustomerID, m.CreditBalance.String(), expectedBalance.String())
	}

	updateQuery := `
		UPDATE customers
		SET credit_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE customer_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, entry.CustomerID, entry.BalanceAfter, entry.CreatedAt, entry.StaffID); err != nil {
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: credit balance cannot go below zero", apperrors.ErrValidation)
		}
		return nil, dbError("failed to update credit balance of customer "+entry.CustomerID, err)
	}

	if err := insertCreditTransaction(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.CreditBalance = entry.BalanceAfter
	m.LastUpdatedAt = entry.CreatedAt
	m.LastUpdatedBy = entry.StaffID
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}
