package services

import (
	"context"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/dto"
)

// CustomerSvcFacade defines operations for customer records.
type CustomerSvcFacade interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)

	// GetCustomerByID retrieves a specific customer.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers.
	ListCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

// SupplierSvcFacade defines operations for supplier records.
type SupplierSvcFacade interface {
	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)

	// GetSupplierByID retrieves a specific supplier.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers.
	ListSuppliers(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
}
