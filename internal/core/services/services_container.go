package services

import (
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Product = NewProductService(repos.ProductRepo)

	container.Sales = NewSalesService(cfg, repos.JournalRepo, repos.AccountRepo, repos.CustomerRepo, repos.ProductRepo, repos.SalesRepo, repos.SequenceRepo)
	container.Purchase = NewPurchaseService(cfg, repos.JournalRepo, repos.AccountRepo, repos.SupplierRepo, repos.ProductRepo, repos.PurchaseRepo)
	container.Expense = NewExpenseService(cfg, repos.JournalRepo, repos.AccountRepo, repos.SupplierRepo, repos.ExpenseRepo, repos.SequenceRepo)

	container.Reporting = NewReportingService(cfg, repos.ReportingRepo, repos.AccountRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
