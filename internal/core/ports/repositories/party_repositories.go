package repositories

import (
	"context"

	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID retrieves a specific customer by their ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a paginated list of customers ordered by name.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)

	// UpdateCustomer updates an existing customer's details.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// SupplierRepositoryFacade defines persistence operations for suppliers.
type SupplierRepositoryFacade interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// FindSupplierByID retrieves a specific supplier by their ID.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers ordered by name.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}
