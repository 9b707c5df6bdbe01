package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxProductRepository implements the product repository interfaces using pgx
type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new product repository instance.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, sku, name, description, unit_price, cost_price, stock_quantity, minimum_stock, unit, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var product models.Product
	var description, unit sql.NullString
	err := row.Scan(
		&product.ProductID,
		&product.SKU,
		&product.Name,
		&description,
		&product.UnitPrice,
		&product.CostPrice,
		&product.StockQuantity,
		&product.MinimumStock,
		&unit,
		&product.IsActive,
		&product.CreatedAt,
		&product.CreatedBy,
		&product.LastUpdatedAt,
		&product.LastUpdatedBy,
	)
	if err != nil {
		return models.Product{}, err
	}
	product.Description = description.String
	product.Unit = unit.String
	return product, nil
}

// SaveProduct inserts a new product row.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.SKU,
		modelProduct.Name,
		sql.NullString{String: modelProduct.Description, Valid: modelProduct.Description != ""},
		modelProduct.UnitPrice,
		modelProduct.CostPrice,
		modelProduct.StockQuantity,
		modelProduct.MinimumStock,
		sql.NullString{String: modelProduct.Unit, Valid: modelProduct.Unit != ""},
		modelProduct.IsActive,
		modelProduct.CreatedAt,
		modelProduct.CreatedBy,
		modelProduct.LastUpdatedAt,
		modelProduct.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("product SKU %s already exists: %w", product.SKU, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// FindProductByID retrieves a single product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with ID %s not found", productID))
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	product := mapping.ToDomainProduct(modelProduct)
	return &product, nil
}

// FindProductBySKU retrieves a single product by its SKU.
func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1;`

	modelProduct, err := scanProduct(r.Pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with SKU %s not found", sku))
		}
		return nil, fmt.Errorf("failed to find product by SKU: %w", err)
	}

	product := mapping.ToDomainProduct(modelProduct)
	return &product, nil
}

// FindProductsByIDs retrieves multiple products by their IDs, keyed by ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	products := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		modelProduct, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products[modelProduct.ProductID] = mapping.ToDomainProduct(modelProduct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// ListProducts retrieves products ordered by SKU.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	modelProducts := []models.Product{}
	for rows.Next() {
		modelProduct, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return mapping.ToDomainProductSlice(modelProducts), nil
}

// UpdateProduct updates the mutable details of an existing product. Stock
// levels change only through the InTx mutations below.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)

	query := `
		UPDATE products
		SET name = $2, description = $3, unit_price = $4, minimum_stock = $5, unit = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE product_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.Name,
		sql.NullString{String: modelProduct.Description, Valid: modelProduct.Description != ""},
		modelProduct.UnitPrice,
		modelProduct.MinimumStock,
		sql.NullString{String: modelProduct.Unit, Valid: modelProduct.Unit != ""},
		modelProduct.IsActive,
		modelProduct.LastUpdatedAt,
		modelProduct.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with ID %s not found for update", product.ProductID))
	}
	return nil
}

// DecrementStockInTx reduces stock only when enough is on hand. The guard in
// the WHERE clause makes the check and the decrement a single atomic step, so
// two concurrent sales can never both take the last unit.
func (r *PgxProductRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, productID string, quantity int64, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1 AND stock_quantity >= $2;`

	cmdTag, err := tx.Exec(ctx, query, productID, quantity, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to decrement product stock", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if checkErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1);`, productID).Scan(&exists); checkErr != nil {
			return apperrors.NewAppError(500, "failed to check product existence", checkErr)
		}
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("product with ID %s not found", productID))
		}
		return fmt.Errorf("product %s has insufficient stock for quantity %d: %w", productID, quantity, apperrors.ErrInsufficientStock)
	}
	return nil
}

// IncrementStockInTx increases stock and records the latest purchase cost.
func (r *PgxProductRepository) IncrementStockInTx(ctx context.Context, tx pgx.Tx, productID string, quantity int64, unitCost decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, cost_price = $3, last_updated_at = $4, last_updated_by = $5
		WHERE product_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, productID, quantity, unitCost, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment product stock", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("product with ID %s not found", productID))
	}
	return nil
}
