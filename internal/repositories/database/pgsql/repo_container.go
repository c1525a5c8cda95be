package pgsql

import (
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:          newPgxCustomerRepository(dbPool),
		CreditTransactionRepo: newPgxCreditTransactionRepository(dbPool),
		SaleRepo:              newPgxSaleRepository(dbPool),
		ExpenseRepo:           newPgxExpenseRepository(dbPool),
	}
}
