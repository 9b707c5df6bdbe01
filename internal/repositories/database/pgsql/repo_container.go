package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	sequenceRepo := newPgxSequenceRepository(pool)

	return &portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(pool),
		JournalRepo:   newPgxJournalRepository(pool, sequenceRepo),
		SequenceRepo:  sequenceRepo,
		CustomerRepo:  newPgxCustomerRepository(pool),
		SupplierRepo:  newPgxSupplierRepository(pool),
		ProductRepo:   newPgxProductRepository(pool),
		SalesRepo:     newPgxSalesRepository(pool, sequenceRepo),
		PurchaseRepo:  newPgxPurchaseRepository(pool),
		ExpenseRepo:   newPgxExpenseRepository(pool, sequenceRepo),
		UserRepo:      newPgxUserRepository(pool),
		ReportingRepo: newPgxReportingRepository(pool),
	}
}
