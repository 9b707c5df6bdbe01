package models

import "github.com/shopspring/decimal"

// Product represents a row in the products table.
type Product struct {
	ProductID     string          `db:"product_id"`
	SKU           string          `db:"sku"`
	Name          string          `db:"name"`
	Description   string          `db:"description"` // Nullable
	UnitPrice     decimal.Decimal `db:"unit_price"`
	CostPrice     decimal.Decimal `db:"cost_price"`
	StockQuantity int64           `db:"stock_quantity"`
	MinimumStock  int64           `db:"minimum_stock"`
	Unit          string          `db:"unit"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
