package services

import (
	"context"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/dto"
)

// SalesSvcFacade posts and reads sales transactions.
type SalesSvcFacade interface {
	// CreateSale posts a sales invoice: journal entry, invoice record and
	// stock decrements happen in one transaction.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.SalesTransaction, error)

	// GetSaleByID retrieves a sales transaction with its line items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.SalesTransaction, error)

	// ListSales retrieves a paginated list of sales transactions.
	ListSales(ctx context.Context, limit, offset int) ([]domain.SalesTransaction, error)
}

// PurchaseSvcFacade posts and reads purchase transactions.
type PurchaseSvcFacade interface {
	// CreatePurchase posts a supplier bill: journal entry, bill record and
	// stock increments happen in one transaction.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseTxn, error)

	// GetPurchaseByID retrieves a purchase transaction with its line items.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseTxn, error)

	// ListPurchases retrieves a paginated list of purchase transactions.
	ListPurchases(ctx context.Context, limit, offset int) ([]domain.PurchaseTxn, error)
}

// ExpenseSvcFacade posts and reads expense transactions.
type ExpenseSvcFacade interface {
	// CreateExpense posts an operating expense against an EXPENSE account,
	// paid from the default cash account.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseTxn, error)

	// GetExpenseByID retrieves a specific expense transaction.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTxn, error)

	// ListExpenses retrieves a paginated list of expense transactions.
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseTxn, error)
}
