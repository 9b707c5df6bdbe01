package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks/internal/core/ports/services"
	"github.com/openbooks-app/openbooks/internal/dto"
	"github.com/openbooks-app/openbooks/internal/utils/accounting"
)

// journalService provides the core double-entry ledger operations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts request lines into domain lines for a new entry.
func buildLines(req []dto.CreateEntryLineRequest, entryID string, userID string, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(req))
	for i, lineReq := range req {
		lines[i] = domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entryID,
			AccountID:      lineReq.AccountID,
			DebitAmount:    lineReq.DebitAmount,
			CreditAmount:   lineReq.CreditAmount,
			Description:    lineReq.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines
}

// collectAccountIDs returns the distinct account IDs referenced by lines.
func collectAccountIDs(lines []domain.JournalLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}
	return ids
}

// validateEntryAccounts checks that every referenced account exists and is
// active. Accounts must already be locked or fetched by the caller.
func validateEntryAccounts(lines []domain.JournalLine, accounts map[string]domain.Account) error {
	for _, line := range lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("account with ID %s not found", line.AccountID))
		}
		if !account.IsActive {
			return fmt.Errorf("account %s is inactive: %w", account.Code, apperrors.ErrValidation)
		}
	}
	return nil
}

// CreateManualEntry validates and persists a manual journal entry in DRAFT
// status. Line shape is checked before balance, balance before account
// existence, so the caller always sees the cheapest failure first.
func (s *journalService) CreateManualEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryDate:       req.EntryDate,
		Description:     req.Description,
		Reference:       req.Reference,
		TransactionType: domain.ManualTransaction,
		Status:          domain.Draft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	lines := buildLines(req.Lines, entry.JournalEntryID, creatorUserID, now)

	if err := accounting.ValidateLines(lines); err != nil {
		return nil, err
	}
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.journalRepo.Rollback(ctx, tx) }()

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, collectAccountIDs(lines))
	if err != nil {
		return nil, err
	}
	if err := validateEntryAccounts(lines, accounts); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, &entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save manual journal entry")
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entry.Lines = lines
	s.LogInfo(ctx, "Manual journal entry created",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("entry_number", entry.EntryNumber))
	return &entry, nil
}

// PostEntry promotes a DRAFT entry to POSTED. Only posted entries contribute
// to balances and reports.
func (s *journalService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("entry %s is %s, only DRAFT entries can be posted: %w", entry.EntryNumber, entry.Status, apperrors.ErrValidation)
	}

	now := time.Now()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Draft, domain.Posted, userID, now); err != nil {
		return nil, err
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	entry.Lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted", slog.String("journal_entry_id", entryID), slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// CancelEntry cancels a DRAFT entry. A posted entry is immutable and must be
// reversed instead.
func (s *journalService) CancelEntry(ctx context.Context, entryID string, userID string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.Status != domain.Draft {
		return fmt.Errorf("entry %s is %s, only DRAFT entries can be cancelled: %w", entry.EntryNumber, entry.Status, apperrors.ErrValidation)
	}

	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Draft, domain.Cancelled, userID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Journal entry cancelled", slog.String("journal_entry_id", entryID))
	return nil
}

// ReverseEntry creates and posts a contra entry that mirrors the original
// with debits and credits swapped, then links the two both ways. Reversing a
// reversal or reversing twice is rejected.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("entry %s is %s, only POSTED entries can be reversed: %w", original.EntryNumber, original.Status, apperrors.ErrValidation)
	}
	if original.OriginalEntryID != "" {
		return nil, fmt.Errorf("entry %s is itself a reversal: %w", original.EntryNumber, apperrors.ErrValidation)
	}
	if original.ReversedByEntryID != "" {
		return nil, fmt.Errorf("entry %s is already reversed: %w", original.EntryNumber, apperrors.ErrValidation)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reversing := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryDate:       now,
		Description:     fmt.Sprintf("Reversal of %s", original.EntryNumber),
		Reference:       original.Reference,
		TransactionType: original.TransactionType,
		Status:          domain.Posted,
		OriginalEntryID: original.JournalEntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	reversingLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		reversingLines[i] = domain.JournalLine{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: reversing.JournalEntryID,
			AccountID:      line.AccountID,
			DebitAmount:    line.CreditAmount,
			CreditAmount:   line.DebitAmount,
			Description:    line.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.journalRepo.Rollback(ctx, tx) }()

	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, collectAccountIDs(reversingLines)); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntryInTx(ctx, tx, &reversing, reversingLines); err != nil {
		s.LogError(ctx, err, "Failed to save reversing entry", slog.String("original_entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.UpdateEntryReversalLinks(ctx, tx, original.JournalEntryID, reversing.JournalEntryID, userID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	reversing.Lines = reversingLines
	s.LogInfo(ctx, "Journal entry reversed",
		slog.String("original_entry_id", original.JournalEntryID),
		slog.String("reversing_entry_id", reversing.JournalEntryID),
		slog.String("reversing_entry_number", reversing.EntryNumber))
	return &reversing, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of entries with their lines.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	filter := portsrepo.EntryListFilter{}
	if params.TransactionType != nil && *params.TransactionType != "" {
		txnType := domain.TransactionType(*params.TransactionType)
		filter.TransactionType = &txnType
	}
	if params.Status != nil && *params.Status != "" {
		status := domain.EntryStatus(*params.Status)
		filter.Status = &status
	}
	if params.FromDate != nil && *params.FromDate != "" {
		from, err := time.Parse("2006-01-02", *params.FromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid fromDate %q: %w", *params.FromDate, apperrors.ErrValidation)
		}
		filter.FromDate = &from
	}
	if params.ToDate != nil && *params.ToDate != "" {
		to, err := time.Parse("2006-01-02", *params.ToDate)
		if err != nil {
			return nil, fmt.Errorf("invalid toDate %q: %w", *params.ToDate, apperrors.ErrValidation)
		}
		filter.ToDate = &to
	}

	entries, err := s.journalRepo.ListEntries(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	entryIDs := make([]string, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.JournalEntryID
	}
	linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].JournalEntryID]
	}
	return entries, nil
}
