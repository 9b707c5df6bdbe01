package domain

// Customer represents a party the business sells to.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`   // Nullable
	Phone      string `json:"phone"`   // Nullable
	Address    string `json:"address"` // Nullable
	TaxID      string `json:"taxID"`   // Nullable
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// Supplier represents a party the business buys from.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`   // Nullable
	Phone      string `json:"phone"`   // Nullable
	Address    string `json:"address"` // Nullable
	TaxID      string `json:"taxID"`   // Nullable
	IsActive   bool   `json:"isActive"`
	AuditFields
}
