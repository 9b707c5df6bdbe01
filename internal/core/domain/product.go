package domain

import "github.com/shopspring/decimal"

// Product represents a stocked item that can appear on sales and purchase
// transactions. StockQuantity is never allowed to go negative.
type Product struct {
	ProductID     string          `json:"productID"` // Primary Key (UUID)
	SKU           string          `json:"sku"`       // Unique stock keeping unit
	Name          string          `json:"name"`
	Description   string          `json:"description"` // Nullable
	UnitPrice     decimal.Decimal `json:"unitPrice"`   // Default selling price
	CostPrice     decimal.Decimal `json:"costPrice"`   // Latest purchase cost
	StockQuantity int64           `json:"stockQuantity"`
	MinimumStock  int64           `json:"minimumStock"`
	Unit          string          `json:"unit"` // e.g. "pcs", "kg"
	IsActive      bool            `json:"isActive"`
	AuditFields
}
