package services

import (
	"github.com/SscSPs/store_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/store_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/platform/config"
	"github.com/SscSPs/store_manager_app/internal/platform/metrics"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, resolver *daterange.Resolver, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	limitMode, err := domain.ParseCreditLimitMode(cfg.CreditLimitMode)
	if err != nil {
		// Config loading already validated the mode
		limitMode = domain.CreditLimitHard
	}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Credit = NewCreditLedgerService(
		repos.CustomerRepo,
		repos.CreditTransactionRepo,
		WithCreditLimitMode(limitMode),
		WithCreditMetrics(m),
	)
	container.Sale = NewSaleService(repos.SaleRepo, container.Customer, container.Credit)
	container.Expense = NewExpenseService(repos.ExpenseRepo, resolver.Location())
	container.Reporting = NewReportingService(
		repos.SaleRepo,
		repos.ExpenseRepo,
		WithReportResolver(resolver),
		WithReportMetrics(m),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CustomerSvcFacade     = (*customerService)(nil)
	_ portssvc.CreditLedgerSvcFacade = (*creditLedgerService)(nil)
	_ portssvc.SaleSvcFacade         = (*saleService)(nil)
	_ portssvc.ExpenseSvcFacade      = (*expenseService)(nil)
)
