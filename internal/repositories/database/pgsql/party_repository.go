package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxCustomerRepository implements the customer repository interface using pgx
type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new customer repository instance.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, email, phone, address, tax_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var customer models.Customer
	var email, phone, address, taxID sql.NullString
	err := row.Scan(
		&customer.CustomerID,
		&customer.Name,
		&email,
		&phone,
		&address,
		&taxID,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.CreatedBy,
		&customer.LastUpdatedAt,
		&customer.LastUpdatedBy,
	)
	if err != nil {
		return models.Customer{}, err
	}
	customer.Email = email.String
	customer.Phone = phone.String
	customer.Address = address.String
	customer.TaxID = taxID.String
	return customer, nil
}

// SaveCustomer inserts a new customer row.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.Pool.Exec(ctx, query,
		modelCustomer.CustomerID,
		modelCustomer.Name,
		sql.NullString{String: modelCustomer.Email, Valid: modelCustomer.Email != ""},
		sql.NullString{String: modelCustomer.Phone, Valid: modelCustomer.Phone != ""},
		sql.NullString{String: modelCustomer.Address, Valid: modelCustomer.Address != ""},
		sql.NullString{String: modelCustomer.TaxID, Valid: modelCustomer.TaxID != ""},
		modelCustomer.IsActive,
		modelCustomer.CreatedAt,
		modelCustomer.CreatedBy,
		modelCustomer.LastUpdatedAt,
		modelCustomer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

// FindCustomerByID retrieves a single customer.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	modelCustomer, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer with ID %s not found", customerID))
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}

	customer := mapping.ToDomainCustomer(modelCustomer)
	return &customer, nil
}

// ListCustomers retrieves customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	modelCustomers := []models.Customer{}
	for rows.Next() {
		modelCustomer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		modelCustomers = append(modelCustomers, modelCustomer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

// UpdateCustomer updates the mutable details of an existing customer.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, address = $5, tax_id = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCustomer.CustomerID,
		modelCustomer.Name,
		sql.NullString{String: modelCustomer.Email, Valid: modelCustomer.Email != ""},
		sql.NullString{String: modelCustomer.Phone, Valid: modelCustomer.Phone != ""},
		sql.NullString{String: modelCustomer.Address, Valid: modelCustomer.Address != ""},
		sql.NullString{String: modelCustomer.TaxID, Valid: modelCustomer.TaxID != ""},
		modelCustomer.IsActive,
		modelCustomer.LastUpdatedAt,
		modelCustomer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer with ID %s not found for update", customer.CustomerID))
	}
	return nil
}

// PgxSupplierRepository implements the supplier repository interface using pgx
type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new supplier repository instance.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, email, phone, address, tax_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var supplier models.Supplier
	var email, phone, address, taxID sql.NullString
	err := row.Scan(
		&supplier.SupplierID,
		&supplier.Name,
		&email,
		&phone,
		&address,
		&taxID,
		&supplier.IsActive,
		&supplier.CreatedAt,
		&supplier.CreatedBy,
		&supplier.LastUpdatedAt,
		&supplier.LastUpdatedBy,
	)
	if err != nil {
		return models.Supplier{}, err
	}
	supplier.Email = email.String
	supplier.Phone = phone.String
	supplier.Address = address.String
	supplier.TaxID = taxID.String
	return supplier, nil
}

// SaveSupplier inserts a new supplier row.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSupplier := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.Pool.Exec(ctx, query,
		modelSupplier.SupplierID,
		modelSupplier.Name,
		sql.NullString{String: modelSupplier.Email, Valid: modelSupplier.Email != ""},
		sql.NullString{String: modelSupplier.Phone, Valid: modelSupplier.Phone != ""},
		sql.NullString{String: modelSupplier.Address, Valid: modelSupplier.Address != ""},
		sql.NullString{String: modelSupplier.TaxID, Valid: modelSupplier.TaxID != ""},
		modelSupplier.IsActive,
		modelSupplier.CreatedAt,
		modelSupplier.CreatedBy,
		modelSupplier.LastUpdatedAt,
		modelSupplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

// FindSupplierByID retrieves a single supplier.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	modelSupplier, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("supplier with ID %s not found", supplierID))
		}
		return nil, fmt.Errorf("failed to find supplier by ID: %w", err)
	}

	supplier := mapping.ToDomainSupplier(modelSupplier)
	return &supplier, nil
}

// ListSuppliers retrieves suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name ASC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	modelSuppliers := []models.Supplier{}
	for rows.Next() {
		modelSupplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		modelSuppliers = append(modelSuppliers, modelSupplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return mapping.ToDomainSupplierSlice(modelSuppliers), nil
}

// UpdateSupplier updates the mutable details of an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	modelSupplier := mapping.ToModelSupplier(supplier)

	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, address = $5, tax_id = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE supplier_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelSupplier.SupplierID,
		modelSupplier.Name,
		sql.NullString{String: modelSupplier.Email, Valid: modelSupplier.Email != ""},
		sql.NullString{String: modelSupplier.Phone, Valid: modelSupplier.Phone != ""},
		sql.NullString{String: modelSupplier.Address, Valid: modelSupplier.Address != ""},
		sql.NullString{String: modelSupplier.TaxID, Valid: modelSupplier.TaxID != ""},
		modelSupplier.IsActive,
		modelSupplier.LastUpdatedAt,
		modelSupplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("supplier with ID %s not found for update", supplier.SupplierID))
	}
	return nil
}
