package domain

import (
	"fmt"
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

// Sequence names used for human-readable document numbering.
const (
	SeqJournalEntry = "journal_entry"
	SeqSalesInvoice = "sales_invoice"
	SeqExpenseRef   = "expense_ref"
)

// FormatEntryNumber renders a journal entry sequence value, e.g. JE-0000042.
func FormatEntryNumber(seq int64) string {
	return fmt.Sprintf("JE-%07d", seq)
}

// FormatInvoiceNumber renders a sales invoice sequence value, e.g. INV-0000007.
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV-%07d", seq)
}

// FormatExpenseReference renders an expense reference sequence value, e.g. EXP-0000003.
func FormatExpenseReference(seq int64) string {
	return fmt.Sprintf("EXP-%07d", seq)
}

// JournalEntry represents a single balanced financial event composed of
// two or more journal lines. The entry number is assigned from a serialized
// counter when the entry is persisted, never by the caller.
type JournalEntry struct {
	JournalEntryID    string          `json:"journalEntryID"` // Primary Key (UUID)
	EntryNumber       string          `json:"entryNumber"`    // JE-<seq>, unique, strictly increasing
	EntryDate         time.Time       `json:"entryDate"`      // Date the event occurred
	Description       string          `json:"description"`
	Reference         string          `json:"reference"` // Nullable external reference (invoice number etc.)
	TransactionType   TransactionType `json:"transactionType"`
	Status            EntryStatus     `json:"status"`
	OriginalEntryID   string          `json:"originalEntryID"`   // Set on reversing entries
	ReversedByEntryID string          `json:"reversedByEntryID"` // Set on entries that were reversed
	Lines             []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine represents a single line within a journal entry, affecting one
// account. Exactly one of DebitAmount and CreditAmount is positive.
type JournalLine struct {
	JournalLineID  string          `json:"journalLineID"` // Primary Key (UUID)
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"`
	DebitAmount    decimal.Decimal `json:"debitAmount"`
	CreditAmount   decimal.Decimal `json:"creditAmount"`
	Description    string          `json:"description"` // Nullable
	AuditFields
}

// IsDebit reports whether the line carries a debit amount.
func (l JournalLine) IsDebit() bool {
	return l.DebitAmount.IsPositive()
}
