package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryWithTx
	SequenceRepo  SequenceRepository
	CustomerRepo  CustomerRepositoryFacade
	SupplierRepo  SupplierRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	SalesRepo     SalesRepositoryFacade
	PurchaseRepo  PurchaseRepositoryFacade
	ExpenseRepo   ExpenseRepositoryFacade
	UserRepo      UserRepositoryFacade
	ReportingRepo ReportingRepository
}
