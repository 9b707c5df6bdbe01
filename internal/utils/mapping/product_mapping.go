package mapping

import (
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		UnitPrice:     d.UnitPrice,
		CostPrice:     d.CostPrice,
		StockQuantity: d.StockQuantity,
		MinimumStock:  d.MinimumStock,
		Unit:          d.Unit,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		UnitPrice:     m.UnitPrice,
		CostPrice:     m.CostPrice,
		StockQuantity: m.StockQuantity,
		MinimumStock:  m.MinimumStock,
		Unit:          m.Unit,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
