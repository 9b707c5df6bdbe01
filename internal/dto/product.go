package dto

import (
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	StockQuantity int64           `json:"stockQuantity" binding:"gte=0"`
	MinimumStock  int64           `json:"minimumStock" binding:"gte=0"`
	Unit          string          `json:"unit"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock quantity is deliberately absent; it changes only through transactions.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	MinimumStock *int64           `json:"minimumStock"`
	Unit         *string          `json:"unit"`
	IsActive     *bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	StockQuantity int64           `json:"stockQuantity"`
	MinimumStock  int64           `json:"minimumStock"`
	Unit          string          `json:"unit,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		CostPrice:     p.CostPrice,
		StockQuantity: p.StockQuantity,
		MinimumStock:  p.MinimumStock,
		Unit:          p.Unit,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListProductResponse converts domain products to a slice of response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
