package dto

import (
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"taxID"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	TaxID      string    `json:"taxID,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		TaxID:      c.TaxID,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCustomerResponse converts domain customers to a slice of response DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"taxID"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID string    `json:"supplierID"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	TaxID      string    `json:"taxID,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		TaxID:      s.TaxID,
		IsActive:   s.IsActive,
		CreatedAt:  s.CreatedAt,
	}
}

// ToListSupplierResponse converts domain suppliers to a slice of response DTOs.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}
