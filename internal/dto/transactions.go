package dto

import (
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest defines one product line of a sale.
type SaleItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateSaleRequest defines the data needed to post a sales invoice.
// TaxRate is a fraction (0.11 = 11%); when omitted the configured default applies.
type CreateSaleRequest struct {
	CustomerID      string            `json:"customerID" binding:"required"`
	TransactionDate time.Time         `json:"transactionDate" binding:"required" time_format:"2006-01-02"`
	DueDate         *time.Time        `json:"dueDate" time_format:"2006-01-02"`
	Items           []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate         *decimal.Decimal  `json:"taxRate"`
}

// SaleItemResponse defines the data returned for one sales line item.
type SaleItemResponse struct {
	ProductID  string          `json:"productID"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// SaleResponse defines the data returned for a sales transaction.
type SaleResponse struct {
	SalesTransactionID string             `json:"salesTransactionID"`
	InvoiceNumber      string             `json:"invoiceNumber"`
	CustomerID         string             `json:"customerID"`
	TransactionDate    time.Time          `json:"transactionDate"`
	DueDate            *time.Time         `json:"dueDate,omitempty"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	TaxAmount          decimal.Decimal    `json:"taxAmount"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	JournalEntryID     string             `json:"journalEntryID"`
	Status             string             `json:"status"`
	Items              []SaleItemResponse `json:"items,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	CreatedBy          string             `json:"createdBy"`
}

// ToSaleResponse converts a domain.SalesTransaction to SaleResponse DTO.
func ToSaleResponse(sale *domain.SalesTransaction) SaleResponse {
	resp := SaleResponse{
		SalesTransactionID: sale.SalesTransactionID,
		InvoiceNumber:      sale.InvoiceNumber,
		CustomerID:         sale.CustomerID,
		TransactionDate:    sale.TransactionDate,
		DueDate:            sale.DueDate,
		Subtotal:           sale.Subtotal,
		TaxAmount:          sale.TaxAmount,
		TotalAmount:        sale.TotalAmount,
		JournalEntryID:     sale.JournalEntryID,
		Status:             string(sale.Status),
		CreatedAt:          sale.CreatedAt,
		CreatedBy:          sale.CreatedBy,
	}
	if len(sale.Items) > 0 {
		resp.Items = make([]SaleItemResponse, len(sale.Items))
		for i, item := range sale.Items {
			resp.Items[i] = SaleItemResponse{
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
			}
		}
	}
	return resp
}

// ToListSaleResponse converts domain sales to a slice of response DTOs.
func ToListSaleResponse(sales []domain.SalesTransaction) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		res[i] = ToSaleResponse(&sale)
	}
	return res
}

// PurchaseItemRequest defines one product line of a purchase.
type PurchaseItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"required"`
}

// CreatePurchaseRequest defines the data needed to post a supplier bill.
type CreatePurchaseRequest struct {
	SupplierID      string                `json:"supplierID" binding:"required"`
	InvoiceNumber   string                `json:"invoiceNumber" binding:"required"`
	TransactionDate time.Time             `json:"transactionDate" binding:"required" time_format:"2006-01-02"`
	DueDate         *time.Time            `json:"dueDate" time_format:"2006-01-02"`
	Items           []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate         *decimal.Decimal      `json:"taxRate"`
}

// PurchaseItemResponse defines the data returned for one purchase line item.
type PurchaseItemResponse struct {
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// PurchaseResponse defines the data returned for a purchase transaction.
type PurchaseResponse struct {
	PurchaseTxnID   string                 `json:"purchaseTxnID"`
	InvoiceNumber   string                 `json:"invoiceNumber"`
	SupplierID      string                 `json:"supplierID"`
	TransactionDate time.Time              `json:"transactionDate"`
	DueDate         *time.Time             `json:"dueDate,omitempty"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	TaxAmount       decimal.Decimal        `json:"taxAmount"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	JournalEntryID  string                 `json:"journalEntryID"`
	Status          string                 `json:"status"`
	Items           []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// ToPurchaseResponse converts a domain.PurchaseTxn to PurchaseResponse DTO.
func ToPurchaseResponse(purchase *domain.PurchaseTxn) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseTxnID:   purchase.PurchaseTxnID,
		InvoiceNumber:   purchase.InvoiceNumber,
		SupplierID:      purchase.SupplierID,
		TransactionDate: purchase.TransactionDate,
		DueDate:         purchase.DueDate,
		Subtotal:        purchase.Subtotal,
		TaxAmount:       purchase.TaxAmount,
		TotalAmount:     purchase.TotalAmount,
		JournalEntryID:  purchase.JournalEntryID,
		Status:          string(purchase.Status),
		CreatedAt:       purchase.CreatedAt,
		CreatedBy:       purchase.CreatedBy,
	}
	if len(purchase.Items) > 0 {
		resp.Items = make([]PurchaseItemResponse, len(purchase.Items))
		for i, item := range purchase.Items {
			resp.Items[i] = PurchaseItemResponse{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
				TotalCost: item.TotalCost,
			}
		}
	}
	return resp
}

// ToListPurchaseResponse converts domain purchases to a slice of response DTOs.
func ToListPurchaseResponse(purchases []domain.PurchaseTxn) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		res[i] = ToPurchaseResponse(&purchase)
	}
	return res
}

// CreateExpenseRequest defines the data needed to post an expense.
type CreateExpenseRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required" time_format:"2006-01-02"`
	AccountID       string          `json:"accountID" binding:"required"`
	SupplierID      *string         `json:"supplierID"`
	Reference       string          `json:"reference"`
}

// ExpenseResponse defines the data returned for an expense transaction.
type ExpenseResponse struct {
	ExpenseTxnID    string          `json:"expenseTxnID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	AccountID       string          `json:"accountID"`
	SupplierID      string          `json:"supplierID,omitempty"`
	Reference       string          `json:"reference"`
	JournalEntryID  string          `json:"journalEntryID"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.ExpenseTxn to ExpenseResponse DTO.
func ToExpenseResponse(expense *domain.ExpenseTxn) ExpenseResponse {
	return ExpenseResponse{
		ExpenseTxnID:    expense.ExpenseTxnID,
		Description:     expense.Description,
		Amount:          expense.Amount,
		TransactionDate: expense.TransactionDate,
		AccountID:       expense.AccountID,
		SupplierID:      expense.SupplierID,
		Reference:       expense.Reference,
		JournalEntryID:  expense.JournalEntryID,
		Status:          string(expense.Status),
		CreatedAt:       expense.CreatedAt,
		CreatedBy:       expense.CreatedBy,
	}
}

// ToListExpenseResponse converts domain expenses to a slice of response DTOs.
func ToListExpenseResponse(expenses []domain.ExpenseTxn) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		res[i] = ToExpenseResponse(&expense)
	}
	return res
}
