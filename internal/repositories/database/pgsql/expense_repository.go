package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxExpenseRepository implements the expense repository interface using pgx
type PgxExpenseRepository struct {
	BaseRepository
	sequenceRepo portsrepo.SequenceRepository
}

// newPgxExpenseRepository creates a new expense repository instance.
func newPgxExpenseRepository(pool *pgxpool.Pool, sequenceRepo portsrepo.SequenceRepository) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequenceRepo:   sequenceRepo,
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_transaction_id, description, amount, transaction_date, account_id, supplier_id, reference, journal_entry_id, status, created_at, created_by, last_updated_at, last_updated_by`

func scanExpenseTxn(row pgx.Row) (models.ExpenseTxn, error) {
	var expense models.ExpenseTxn
	var supplierID sql.NullString
	err := row.Scan(
		&expense.ExpenseTxnID,
		&expense.Description,
		&expense.Amount,
		&expense.TransactionDate,
		&expense.AccountID,
		&supplierID,
		&expense.Reference,
		&expense.JournalEntryID,
		&expense.Status,
		&expense.CreatedAt,
		&expense.CreatedBy,
		&expense.LastUpdatedAt,
		&expense.LastUpdatedBy,
	)
	if err != nil {
		return models.ExpenseTxn{}, err
	}
	expense.SupplierID = supplierID.String
	return expense, nil
}

// SaveExpenseInTx inserts the expense transaction inside tx. When the caller
// supplied no reference, one is assigned from the expense sequence.
func (r *PgxExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense *domain.ExpenseTxn) error {
	if expense.Reference == "" {
		seq, err := r.sequenceRepo.NextValueInTx(ctx, tx, domain.SeqExpenseRef)
		if err != nil {
			return apperrors.NewAppError(500, "failed to assign expense reference", err)
		}
		expense.Reference = domain.FormatExpenseReference(seq)
	}

	modelExpense := mapping.ToModelExpenseTxn(*expense)

	query := `
		INSERT INTO expense_transactions (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	supplierID := sql.NullString{String: modelExpense.SupplierID, Valid: modelExpense.SupplierID != ""}

	_, err := tx.Exec(ctx, query,
		modelExpense.ExpenseTxnID,
		modelExpense.Description,
		modelExpense.Amount,
		modelExpense.TransactionDate,
		modelExpense.AccountID,
		supplierID,
		modelExpense.Reference,
		modelExpense.JournalEntryID,
		modelExpense.Status,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert expense transaction", err)
	}
	return nil
}

// FindExpenseByID retrieves a single expense transaction.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseTxn, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense_transactions WHERE expense_transaction_id = $1;`

	modelExpense, err := scanExpenseTxn(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense transaction with ID %s not found", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense transaction by ID: %w", err)
	}

	expense := mapping.ToDomainExpenseTxn(modelExpense)
	return &expense, nil
}

// ListExpenses retrieves expense transactions ordered newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.ExpenseTxn, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + expenseColumns + ` FROM expense_transactions ORDER BY transaction_date DESC, created_at DESC LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense transactions: %w", err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseTxn{}
	for rows.Next() {
		modelExpense, err := scanExpenseTxn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense transaction row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpenseTxn(modelExpense))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense transaction rows: %w", err)
	}
	return expenses, nil
}
