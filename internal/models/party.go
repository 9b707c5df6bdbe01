package models

// Customer represents a row in the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`   // Nullable
	Phone      string `db:"phone"`   // Nullable
	Address    string `db:"address"` // Nullable
	TaxID      string `db:"tax_id"`  // Nullable
	IsActive   bool   `db:"is_active"`
	AuditFields
}

// Supplier represents a row in the suppliers table.
type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`   // Nullable
	Phone      string `db:"phone"`   // Nullable
	Address    string `db:"address"` // Nullable
	TaxID      string `db:"tax_id"`  // Nullable
	IsActive   bool   `db:"is_active"`
	AuditFields
}
