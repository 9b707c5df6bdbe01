package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// SalesRepositoryFacade defines persistence operations for sales transactions.
type SalesRepositoryFacade interface {
	// SaveSaleInTx persists a sales transaction and its line items within a
	// caller-owned transaction. The invoice number is assigned from the sales
	// invoice sequence and returned on the transaction.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale *domain.SalesTransaction, items []domain.SalesLineItem) error

	// FindSaleByID retrieves a sales transaction with its line items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.SalesTransaction, error)

	// ListSales retrieves a paginated list of sales transactions, newest first.
	ListSales(ctx context.Context, limit int, offset int) ([]domain.SalesTransaction, error)
}

// PurchaseRepositoryFacade defines persistence operations for purchase transactions.
type PurchaseRepositoryFacade interface {
	// SavePurchaseInTx persists a purchase transaction and its line items within
	// a caller-owned transaction.
	SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase *domain.PurchaseTxn, items []domain.PurchaseLineItem) error

	// FindPurchaseByID retrieves a purchase transaction with its line items.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseTxn, error)

	// ListPurchases retrieves a paginated list of purchase transactions, newest first.
	ListPurchases(ctx context.Context, limit int, offset int) ([]domain.PurchaseTxn, error)
}

// ExpenseRepositoryFacade defines persistence operations for expense transactions.
type ExpenseRepositoryFacade interface {
	// SaveExpenseInTx persists an expense transaction within a caller-owned
	// transaction. When the expense carries no reference, one is assigned from
	// the expense sequence.
	SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense *domain.ExpenseTxn) error

	// FindExpenseByID retrieves a specific expense transaction.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTxn, error)

	// ListExpenses retrieves a paginated list of expense transactions, newest first.
	ListExpenses(ctx context.Context, limit int, offset int) ([]domain.ExpenseTxn, error)
}
