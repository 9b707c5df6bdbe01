package services

import (
	"context"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	"github.com/openbooks-app/openbooks/internal/dto"
)

// JournalReaderSvc defines read operations for journal entry data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entry data
type JournalWriterSvc interface {
	// CreateManualEntry validates and persists a manual journal entry in DRAFT
	// status. The entry number is assigned atomically at persistence time.
	CreateManualEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// PostEntry promotes a DRAFT entry to POSTED.
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// CancelEntry cancels a DRAFT entry. Posted entries must be reversed instead.
	CancelEntry(ctx context.Context, entryID string, userID string) error

	// ReverseEntry creates and posts a contra entry for a POSTED entry,
	// linking the two. Reversing a reversal is rejected.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
