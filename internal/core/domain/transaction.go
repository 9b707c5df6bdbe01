package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTransaction records an invoice issued to a customer. Its financial
// effect lives entirely in the linked journal entry; Status mirrors that
// entry's status.
type SalesTransaction struct {
	SalesTransactionID string          `json:"salesTransactionID"` // Primary Key (UUID)
	InvoiceNumber      string          `json:"invoiceNumber"`      // INV-<seq>, unique
	CustomerID         string          `json:"customerID"`
	TransactionDate    time.Time       `json:"transactionDate"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	JournalEntryID     string          `json:"journalEntryID"`
	Status             EntryStatus     `json:"status"`
	Items              []SalesLineItem `json:"items,omitempty"`
	AuditFields
}

// SalesLineItem is one product line on a sales invoice.
type SalesLineItem struct {
	SalesLineItemID    string          `json:"salesLineItemID"` // Primary Key (UUID)
	SalesTransactionID string          `json:"salesTransactionID"`
	ProductID          string          `json:"productID"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

// PurchaseTxn records a supplier bill. InvoiceNumber is the supplier's own
// document number and is supplied by the caller. Status mirrors the linked
// journal entry's status.
type PurchaseTxn struct {
	PurchaseTxnID   string             `json:"purchaseTxnID"` // Primary Key (UUID)
	InvoiceNumber   string             `json:"invoiceNumber"`
	SupplierID      string             `json:"supplierID"`
	TransactionDate time.Time          `json:"transactionDate"`
	DueDate         *time.Time         `json:"dueDate,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	TaxAmount       decimal.Decimal    `json:"taxAmount"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	JournalEntryID  string             `json:"journalEntryID"`
	Status          EntryStatus        `json:"status"`
	Items           []PurchaseLineItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseLineItem is one product line on a supplier bill.
type PurchaseLineItem struct {
	PurchaseLineItemID string          `json:"purchaseLineItemID"` // Primary Key (UUID)
	PurchaseTxnID      string          `json:"purchaseTxnID"`
	ProductID          string          `json:"productID"`
	Quantity           int64           `json:"quantity"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	TotalCost          decimal.Decimal `json:"totalCost"`
}

// ExpenseTxn records an operating expense paid from the default cash account.
// Status mirrors the linked journal entry's status.
type ExpenseTxn struct {
	ExpenseTxnID    string          `json:"expenseTxnID"` // Primary Key (UUID)
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	AccountID       string          `json:"accountID"`            // Target EXPENSE account
	SupplierID      string          `json:"supplierID,omitempty"` // Nullable
	Reference       string          `json:"reference"`            // EXP-<seq> when not supplied
	JournalEntryID  string          `json:"journalEntryID"`
	Status          EntryStatus     `json:"status"`
	AuditFields
}
