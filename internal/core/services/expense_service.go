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
	"github.com/openbooks-app/openbooks/internal/platform/config"
)

// expenseService posts operating expenses paid from the default cash account.
type expenseService struct {
	BaseService
	cfg          *config.Config
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(
	cfg *config.Config,
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		cfg:          cfg,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		supplierRepo: supplierRepo,
		expenseRepo:  expenseRepo,
		sequenceRepo: sequenceRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense posts an expense: DR the target expense account, CR the
// default cash account. The target account must be of type EXPENSE.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.ExpenseTxn, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("expense amount must be positive: %w", apperrors.ErrValidation)
	}

	target, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if target.AccountType != domain.Expense {
		return nil, fmt.Errorf("account %s has type %s, expenses must target an EXPENSE account: %w", target.Code, target.AccountType, apperrors.ErrInvalidAccountType)
	}

	supplierID := ""
	if req.SupplierID != nil && *req.SupplierID != "" {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
		supplierID = *req.SupplierID
	}

	accountsByCode, err := s.accountRepo.FindAccountsByCodes(ctx, []string{s.cfg.SystemAccounts.Cash})
	if err != nil {
		return nil, err
	}
	cash, err := systemAccount(accountsByCode, s.cfg.SystemAccounts.Cash, "cash")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID:  uuid.NewString(),
		EntryDate:       req.TransactionDate,
		Description:     req.Description,
		TransactionType: domain.ExpenseTransaction,
		Status:          domain.Posted,
		AuditFields:     postingAudit(userID, now),
	}

	lines := []domain.JournalLine{
		{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      target.AccountID,
			DebitAmount:    req.Amount,
			Description:    req.Description,
			AuditFields:    postingAudit(userID, now),
		},
		{
			JournalLineID:  uuid.NewString(),
			JournalEntryID: entry.JournalEntryID,
			AccountID:      cash.AccountID,
			CreditAmount:   req.Amount,
			Description:    req.Description,
			AuditFields:    postingAudit(userID, now),
		},
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.journalRepo.Rollback(ctx, tx) }()

	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, collectAccountIDs(lines)); err != nil {
		return nil, err
	}

	reference := req.Reference
	if reference == "" {
		seq, err := s.sequenceRepo.NextValueInTx(ctx, tx, domain.SeqExpenseRef)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to assign expense reference", err)
		}
		reference = domain.FormatExpenseReference(seq)
	}
	entry.Reference = reference

	if err := s.journalRepo.SaveEntryInTx(ctx, tx, &entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save expense journal entry")
		return nil, err
	}

	expense := domain.ExpenseTxn{
		ExpenseTxnID:    uuid.NewString(),
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		AccountID:       target.AccountID,
		SupplierID:      supplierID,
		Reference:       reference,
		JournalEntryID:  entry.JournalEntryID,
		Status:          entry.Status,
		AuditFields:     postingAudit(userID, now),
	}
	if err := s.expenseRepo.SaveExpenseInTx(ctx, tx, &expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense transaction")
		return nil, err
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Expense posted",
		slog.String("expense_transaction_id", expense.ExpenseTxnID),
		slog.String("reference", expense.Reference),
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("amount", req.Amount.String()))
	return &expense, nil
}

// GetExpenseByID retrieves a specific expense transaction.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTxn, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses retrieves a paginated list of expense transactions.
func (s *expenseService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseTxn, error) {
	return s.expenseRepo.ListExpenses(ctx, limit, offset)
}
