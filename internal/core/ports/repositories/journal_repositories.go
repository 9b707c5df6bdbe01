package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// EntryListFilter narrows ListEntries results.
type EntryListFilter struct {
	TransactionType *domain.TransactionType
	Status          *domain.EntryStatus
	FromDate        *time.Time
	ToDate          *time.Time
}

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryByNumber retrieves a journal entry by its entry number.
	FindEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries ordered by entry number descending.
	ListEntries(ctx context.Context, filter EntryListFilter, limit int, offset int) ([]domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines belonging to a single journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveEntry persists an entry and its lines in a single transaction, assigning
	// the entry number from the journal sequence. The assigned number is returned
	// on the entry.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry, lines []domain.JournalLine) error

	// SaveEntryInTx persists an entry and its lines within a caller-owned
	// transaction. The entry number is assigned from the journal sequence.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateEntryStatus moves an entry from one lifecycle status to another.
	// The update is conditional on the current status; a concurrent transition
	// surfaces as a validation error.
	UpdateEntryStatus(ctx context.Context, entryID string, from domain.EntryStatus, to domain.EntryStatus, userID string, now time.Time) error

	// UpdateEntryReversalLinks records the two-way link between an entry and
	// its reversal. Fails when the entry is already reversed.
	UpdateEntryReversalLinks(ctx context.Context, tx pgx.Tx, originalEntryID string, reversingEntryID string, userID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
