package dto

import (
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest defines one line of a manual journal entry.
// Exactly one of debitAmount and creditAmount must be positive.
type CreateEntryLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// CreateEntryRequest defines the data needed to create a manual journal entry.
type CreateEntryRequest struct {
	EntryDate   time.Time                `json:"entryDate" binding:"required" time_format:"2006-01-02"`
	Description string                   `json:"description" binding:"required"`
	Reference   string                   `json:"reference"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	JournalLineID string          `json:"journalLineID"`
	AccountID     string          `json:"accountID"`
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
	Description   string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID    string                `json:"journalEntryID"`
	EntryNumber       string                `json:"entryNumber"`
	EntryDate         time.Time             `json:"entryDate"`
	Description       string                `json:"description"`
	Reference         string                `json:"reference,omitempty"`
	TransactionType   string                `json:"transactionType"`
	Status            string                `json:"status"`
	OriginalEntryID   string                `json:"originalEntryID,omitempty"`
	ReversedByEntryID string                `json:"reversedByEntryID,omitempty"`
	Lines             []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalLine to JournalLineResponse DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		JournalLineID: line.JournalLineID,
		AccountID:     line.AccountID,
		DebitAmount:   line.DebitAmount,
		CreditAmount:  line.CreditAmount,
		Description:   line.Description,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		JournalEntryID:    entry.JournalEntryID,
		EntryNumber:       entry.EntryNumber,
		EntryDate:         entry.EntryDate,
		Description:       entry.Description,
		Reference:         entry.Reference,
		TransactionType:   string(entry.TransactionType),
		Status:            string(entry.Status),
		OriginalEntryID:   entry.OriginalEntryID,
		ReversedByEntryID: entry.ReversedByEntryID,
		CreatedAt:         entry.CreatedAt,
		CreatedBy:         entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i, line := range entry.Lines {
			resp.Lines[i] = ToJournalLineResponse(&line)
		}
	}
	return resp
}

// ToListEntriesResponse converts domain entries to a slice of response DTOs.
func ToListEntriesResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToJournalEntryResponse(&entry)
	}
	return res
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit           int     `form:"limit,default=50"`
	Offset          int     `form:"offset,default=0"`
	TransactionType *string `form:"type"`
	Status          *string `form:"status"`
	FromDate        *string `form:"fromDate"` // YYYY-MM-DD
	ToDate          *string `form:"toDate"`   // YYYY-MM-DD
}
