package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Posted    EntryStatus = "POSTED"
	Cancelled EntryStatus = "CANCELLED"
)

// TransactionType classifies the business event behind a journal entry.
type TransactionType string

const (
	SaleTransaction     TransactionType = "SALE"
	PurchaseTransaction TransactionType = "PURCHASE"
	ExpenseTransaction  TransactionType = "EXPENSE"
	ManualTransaction   TransactionType = "MANUAL"
)

// JournalEntry represents a row in the journal_entries table.
type JournalEntry struct {
	JournalEntryID    string          `db:"journal_entry_id"`
	EntryNumber       string          `db:"entry_number"`
	EntryDate         time.Time       `db:"entry_date"`
	Description       string          `db:"description"`
	Reference         string          `db:"reference"` // Nullable
	TransactionType   TransactionType `db:"transaction_type"`
	Status            EntryStatus     `db:"status"`
	OriginalEntryID   string          `db:"original_entry_id"`    // Nullable
	ReversedByEntryID string          `db:"reversed_by_entry_id"` // Nullable
	AuditFields
}

// JournalLine represents a row in the journal_lines table.
type JournalLine struct {
	JournalLineID  string          `db:"journal_line_id"`
	JournalEntryID string          `db:"journal_entry_id"`
	AccountID      string          `db:"account_id"`
	DebitAmount    decimal.Decimal `db:"debit_amount"`
	CreditAmount   decimal.Decimal `db:"credit_amount"`
	Description    string          `db:"description"` // Nullable
	AuditFields
}
