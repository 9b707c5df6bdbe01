package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxJournalRepository implements the journal repository interfaces using pgx
type PgxJournalRepository struct {
	BaseRepository
	sequenceRepo portsrepo.SequenceRepository
}

// newPgxJournalRepository creates a new journal repository instance.
func newPgxJournalRepository(pool *pgxpool.Pool, sequenceRepo portsrepo.SequenceRepository) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequenceRepo:   sequenceRepo,
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const journalEntryColumns = `journal_entry_id, entry_number, entry_date, description, reference, transaction_type, status, original_entry_id, reversed_by_entry_id, created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `journal_line_id, journal_entry_id, account_id, debit_amount, credit_amount, description, created_at, created_by, last_updated_at, last_updated_by`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var entry models.JournalEntry
	var reference, originalID, reversedByID sql.NullString
	err := row.Scan(
		&entry.JournalEntryID,
		&entry.EntryNumber,
		&entry.EntryDate,
		&entry.Description,
		&reference,
		&entry.TransactionType,
		&entry.Status,
		&originalID,
		&reversedByID,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entry.Reference = reference.String
	entry.OriginalEntryID = originalID.String
	entry.ReversedByEntryID = reversedByID.String
	return entry, nil
}

func scanJournalLine(row pgx.Row) (models.JournalLine, error) {
	var line models.JournalLine
	var description sql.NullString
	err := row.Scan(
		&line.JournalLineID,
		&line.JournalEntryID,
		&line.AccountID,
		&line.DebitAmount,
		&line.CreditAmount,
		&description,
		&line.CreatedAt,
		&line.CreatedBy,
		&line.LastUpdatedAt,
		&line.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalLine{}, err
	}
	line.Description = description.String
	return line, nil
}

// SaveEntry persists an entry and its lines in a single transaction it owns.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.SaveEntryInTx(ctx, tx, entry, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntryInTx assigns the next entry number and inserts the entry with its
// lines inside tx. The caller is expected to have locked the affected accounts.
func (r *PgxJournalRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry, lines []domain.JournalLine) error {
	seq, err := r.sequenceRepo.NextValueInTx(ctx, tx, domain.SeqJournalEntry)
	if err != nil {
		return apperrors.NewAppError(500, "failed to assign entry number", err)
	}
	entry.EntryNumber = domain.FormatEntryNumber(seq)

	modelEntry := mapping.ToModelJournalEntry(*entry)

	entryQuery := `
		INSERT INTO journal_entries (` + journalEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	reference := sql.NullString{String: modelEntry.Reference, Valid: modelEntry.Reference != ""}
	originalID := sql.NullString{String: modelEntry.OriginalEntryID, Valid: modelEntry.OriginalEntryID != ""}
	reversedByID := sql.NullString{String: modelEntry.ReversedByEntryID, Valid: modelEntry.ReversedByEntryID != ""}

	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.JournalEntryID,
		modelEntry.EntryNumber,
		modelEntry.EntryDate,
		modelEntry.Description,
		reference,
		modelEntry.TransactionType,
		modelEntry.Status,
		originalID,
		reversedByID,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	batch := &pgx.Batch{}
	for _, line := range lines {
		modelLine := mapping.ToModelJournalLine(line)
		lineDescription := sql.NullString{String: modelLine.Description, Valid: modelLine.Description != ""}
		batch.Queue(lineQuery,
			modelLine.JournalLineID,
			modelEntry.JournalEntryID,
			modelLine.AccountID,
			modelLine.DebitAmount,
			modelLine.CreditAmount,
			lineDescription,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.NewAppError(500, "failed to insert journal line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close journal line batch", err)
	}
	return nil
}

// FindEntryByID retrieves a journal entry without its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`

	modelEntry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry with ID %s not found", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry by ID: %w", err)
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	return &domainEntry, nil
}

// FindEntryByNumber retrieves a journal entry by its assigned number.
func (r *PgxJournalRepository) FindEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_number = $1;`

	modelEntry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, entryNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryNumber))
		}
		return nil, fmt.Errorf("failed to find journal entry by number: %w", err)
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntries retrieves entries ordered newest first by entry number.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter portsrepo.EntryListFilter, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.TransactionType != nil {
		query += fmt.Sprintf(" AND transaction_type = $%d", argPos)
		args = append(args, *filter.TransactionType)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.FromDate != nil {
		query += fmt.Sprintf(" AND entry_date >= $%d", argPos)
		args = append(args, *filter.FromDate)
		argPos++
	}
	if filter.ToDate != nil {
		query += fmt.Sprintf(" AND entry_date <= $%d", argPos)
		args = append(args, *filter.ToDate)
		argPos++
	}
	query += fmt.Sprintf(" ORDER BY entry_number DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		modelEntry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		modelEntries = append(modelEntries, modelEntry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, modelEntry := range modelEntries {
		entries[i] = mapping.ToDomainJournalEntry(modelEntry)
	}
	return entries, nil
}

// FindLinesByEntryID retrieves the lines of one entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_entry_id = $1 ORDER BY created_at ASC, journal_line_id ASC;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	modelLines := []models.JournalLine{}
	for rows.Next() {
		modelLine, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		modelLines = append(modelLines, modelLine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(modelLines), nil
}

// FindLinesByEntryIDs retrieves lines for several entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_entry_id = ANY($1) ORDER BY created_at ASC, journal_line_id ASC;`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		modelLine, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		grouped[modelLine.JournalEntryID] = append(grouped[modelLine.JournalEntryID], mapping.ToDomainJournalLine(modelLine))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return grouped, nil
}

// UpdateEntryStatus moves an entry from one lifecycle status to another. The
// update is conditional on the current status so that two concurrent
// transitions cannot both succeed; the loser sees zero rows and gets a
// validation error.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, from domain.EntryStatus, to domain.EntryStatus, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE journal_entry_id = $1 AND status = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID, from, to, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry with ID %s is no longer %s: %w", entryID, from, apperrors.ErrValidation)
	}
	return nil
}

// UpdateEntryReversalLinks records the two-way link between an entry and the
// entry that reverses it, inside the reversal's transaction. The update is
// conditional on the entry not being reversed yet, so concurrent reversals of
// the same entry cannot both commit.
func (r *PgxJournalRepository) UpdateEntryReversalLinks(ctx context.Context, tx pgx.Tx, originalEntryID string, reversingEntryID string, userID string, now time.Time) error {
	query := `
		UPDATE journal_entries
		SET reversed_by_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_entry_id = $1 AND reversed_by_entry_id IS NULL;`

	cmdTag, err := tx.Exec(ctx, query, originalEntryID, reversingEntryID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link reversed entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("journal entry with ID %s is already reversed: %w", originalEntryID, apperrors.ErrValidation)
	}
	return nil
}
