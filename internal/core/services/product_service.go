package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
)

// productService manages the product catalog.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct persists a new product with its opening stock level.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	if req.UnitPrice.IsNegative() || req.CostPrice.IsNegative() {
		return nil, fmt.Errorf("prices must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinimumStock:  req.MinimumStock,
		Unit:          req.Unit,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("sku", req.SKU))
		return nil, err
	}
	return &product, nil
}

// GetProductByID retrieves a specific product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves a paginated list of products.
func (s *productService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, limit, offset)
}

// UpdateProduct applies the provided fields. Stock is off limits here, it
// only moves through posted sales and purchases.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("unit price must not be negative: %w", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.MinimumStock != nil {
		product.MinimumStock = *req.MinimumStock
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}
