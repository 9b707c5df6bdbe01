package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductBySKU retrieves a product by its unique SKU.
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products by their IDs.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of products ordered by SKU.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductStockSupport defines stock mutations used inside posting transactions.
type ProductStockSupport interface {
	// DecrementStockInTx atomically reduces stock, failing with
	// apperrors.ErrInsufficientStock when the product holds less than quantity.
	DecrementStockInTx(ctx context.Context, tx pgx.Tx, productID string, quantity int64, userID string, now time.Time) error

	// IncrementStockInTx increases stock and records the latest unit cost.
	IncrementStockInTx(ctx context.Context, tx pgx.Tx, productID string, quantity int64, unitCost decimal.Decimal, userID string, now time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
// This is a facade for clients that need access to all operations
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductStockSupport
}
