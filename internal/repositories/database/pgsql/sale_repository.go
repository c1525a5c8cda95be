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
)

const saleColumns = `transaction_id, store_id, cashier_id, cashier_name, customer_id, total, discount,
	payment_method, status, created_at, created_by, last_updated_at, last_updated_by`

const saleItemColumns = `transaction_id, line_no, product_id, category_id, name, unit_price, quantity`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

func scanSale(row pgx.Row) (models.SaleTransaction, error) {
	var m models.SaleTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.StoreID,
		&m.CashierID,
		&m.CashierName,
		&m.CustomerID,
		&m.Total,
		&m.Discount,
		&m.PaymentMethod,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts the sale header and its items in one transaction.
func (r *PgxSaleRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	header, items := mapping.ToModelSale(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO sale_transactions (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.StoreID,
		header.CashierID,
		header.CashierName,
		header.CustomerID,
		header.Total,
		header.Discount,
		header.PaymentMethod,
		header.Status,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sale %s already exists", apperrors.ErrDuplicate, header.TransactionID)
		}
		return dbError("failed to insert sale "+header.TransactionID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `INSERT INTO sale_items (` + saleItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for _, it := range items {
		batch.Queue(itemQuery,
			it.TransactionID,
			it.LineNo,
			it.ProductID,
			it.CategoryID,
			it.Name,
			it.UnitPrice,
			it.Quantity,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return dbError("failed to insert items of sale "+header.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a sale with its items.
func (r *PgxSaleRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + saleColumns + ` FROM sale_transactions WHERE transaction_id = $1;`
	header, err := scanSale(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, dbError("failed to find sale "+transactionID, err)
	}

	items, err := r.findItems(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	sale := mapping.ToDomainSale(header, items[transactionID])
	return &sale, nil
}

// ListTransactions retrieves a store's sales with their items, ordered by creation time.
// The range bounds are inclusive.
func (r *PgxSaleRepository) ListTransactions(ctx context.Context, storeID string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	query := `SELECT ` + saleColumns + ` FROM sale_transactions WHERE store_id = $1`
	args := []interface{}{storeID}
	if dateRange != nil {
		query += ` AND created_at BETWEEN $2 AND $3`
		args = append(args, dateRange.Start, dateRange.End)
	}
	query += ` ORDER BY created_at ASC, transaction_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dbError("failed to query sales for store "+storeID, err)
	}
	defer rows.Close()

	headers := make([]models.SaleTransaction, 0)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, dbError("failed to scan sale row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating sale rows", err)
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Transaction, len(headers))
	for i, h := range headers {
		result[i] = mapping.ToDomainSale(h, items[h.TransactionID])
	}
	return result, nil
}

// findItems loads the items of the given sales keyed by transaction id, in line order.
func (r *PgxSaleRepository) findItems(ctx context.Context, transactionIDs []string) (map[string][]models.SaleItem, error) {
	if len(transactionIDs) == 0 {
		return map[string][]models.SaleItem{}, nil
	}
	query := `
		SELECT ` + saleItemColumns + `
		FROM sale_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, dbError("failed to query sale items", err)
	}
	defer rows.Close()

	items := make([]models.SaleItem, 0)
	for rows.Next() {
		var it models.SaleItem
		if err := rows.Scan(
			&it.TransactionID,
			&it.LineNo,
			&it.ProductID,
			&it.CategoryID,
			&it.Name,
			&it.UnitPrice,
			&it.Quantity,
		); err != nil {
			return nil, dbError("failed to scan sale item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating sale item rows", err)
	}
	return groupItems(items), nil
}

func groupItems(items []models.SaleItem) map[string][]models.SaleItem {
	grouped := make(map[string][]models.SaleItem)
	for _, it := range items {
		grouped[it.TransactionID] = append(grouped[it.TransactionID], it)
	}
	return grouped
}

// ListCategories retrieves a store's product categories.
func (r *PgxSaleRepository) ListCategories(ctx context.Context, storeID string) ([]domain.Category, error) {
	query := `SELECT category_id, store_id, name FROM categories WHERE store_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, dbError("failed to query categories for store "+storeID, err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.StoreID, &m.Name); err != nil {
			return nil, dbError("failed to scan category row", err)
		}
		result = append(result, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("error iterating category rows", err)
	}
	return result, nil
}

// VoidTransaction moves a Completed sale to Voided.
func (r *PgxSaleRepository) VoidTransaction(ctx context.Context, transactionID string, userID string, now time.Time) error {
	query := `
		UPDATE sale_transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, models.SaleVoided, now, userID, models.SaleCompleted)
	if err != nil {
		return dbError("failed to void sale "+transactionID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var status models.SaleStatus
	err = r.Pool.QueryRow(ctx, `SELECT status FROM sale_transactions WHERE transaction_id = $1;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, transactionID)
		}
		return dbError("failed to check sale "+transactionID, err)
	}
	return fmt.Errorf("%w: sale %s is %s", apperrors.ErrConflict, transactionID, status)
}
