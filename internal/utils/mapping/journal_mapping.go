package mapping

import (
	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID:    d.JournalEntryID,
		EntryNumber:       d.EntryNumber,
		EntryDate:         d.EntryDate,
		Description:       d.Description,
		Reference:         d.Reference,
		TransactionType:   models.TransactionType(d.TransactionType),
		Status:            models.EntryStatus(d.Status),
		OriginalEntryID:   d.OriginalEntryID,
		ReversedByEntryID: d.ReversedByEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID:    m.JournalEntryID,
		EntryNumber:       m.EntryNumber,
		EntryDate:         m.EntryDate,
		Description:       m.Description,
		Reference:         m.Reference,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Status:            domain.EntryStatus(m.Status),
		OriginalEntryID:   m.OriginalEntryID,
		ReversedByEntryID: m.ReversedByEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		JournalLineID:  d.JournalLineID,
		JournalEntryID: d.JournalEntryID,
		AccountID:      d.AccountID,
		DebitAmount:    d.DebitAmount,
		CreditAmount:   d.CreditAmount,
		Description:    d.Description,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		JournalLineID:  m.JournalLineID,
		JournalEntryID: m.JournalEntryID,
		AccountID:      m.AccountID,
		DebitAmount:    m.DebitAmount,
		CreditAmount:   m.CreditAmount,
		Description:    m.Description,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
