package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTransaction represents a row in the sales_transactions table. The
// status column mirrors the linked journal entry's status.
type SalesTransaction struct {
	SalesTransactionID string          `db:"sales_transaction_id"`
	InvoiceNumber      string          `db:"invoice_number"`
	CustomerID         string          `db:"customer_id"`
	TransactionDate    time.Time       `db:"transaction_date"`
	DueDate            *time.Time      `db:"due_date"` // Nullable
	Subtotal           decimal.Decimal `db:"subtotal"`
	TaxAmount          decimal.Decimal `db:"tax_amount"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	JournalEntryID     string          `db:"journal_entry_id"`
	Status             EntryStatus     `db:"status"`
	AuditFields
}

// SalesLineItem represents a row in the sales_line_items table.
type SalesLineItem struct {
	SalesLineItemID    string          `db:"sales_line_item_id"`
	SalesTransactionID string          `db:"sales_transaction_id"`
	ProductID          string          `db:"product_id"`
	Quantity           int64           `db:"quantity"`
	UnitPrice          decimal.Decimal `db:"unit_price"`
	TotalPrice         decimal.Decimal `db:"total_price"`
}

// PurchaseTxn represents a row in the purchase_transactions table.
type PurchaseTxn struct {
	PurchaseTxnID   string          `db:"purchase_transaction_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	SupplierID      string          `db:"supplier_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	DueDate         *time.Time      `db:"due_date"` // Nullable
	Subtotal        decimal.Decimal `db:"subtotal"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	JournalEntryID  string          `db:"journal_entry_id"`
	Status          EntryStatus     `db:"status"`
	AuditFields
}

// PurchaseLineItem represents a row in the purchase_line_items table.
type PurchaseLineItem struct {
	PurchaseLineItemID string          `db:"purchase_line_item_id"`
	PurchaseTxnID      string          `db:"purchase_transaction_id"`
	ProductID          string          `db:"product_id"`
	Quantity           int64           `db:"quantity"`
	UnitCost           decimal.Decimal `db:"unit_cost"`
	TotalCost          decimal.Decimal `db:"total_cost"`
}

// ExpenseTxn represents a row in the expense_transactions table.
type ExpenseTxn struct {
	ExpenseTxnID    string          `db:"expense_transaction_id"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	AccountID       string          `db:"account_id"`
	SupplierID      string          `db:"supplier_id"` // Nullable
	Reference       string          `db:"reference"`   // Nullable
	JournalEntryID  string          `db:"journal_entry_id"`
	Status          EntryStatus     `db:"status"`
	AuditFields
}
