package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks-app/openbooks/internal/apperrors"
	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
	"github.com/openbooks-app/openbooks/internal/models"
	"github.com/openbooks-app/openbooks/internal/utils/mapping"
)

// PgxAccountRepository implements the account repository interfaces using pgx
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new account repository instance.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, account_type, parent_account_id, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var account models.Account
	var parentID, description sql.NullString
	err := row.Scan(
		&account.AccountID,
		&account.Code,
		&account.Name,
		&account.AccountType,
		&parentID,
		&description,
		&account.IsActive,
		&account.CreatedAt,
		&account.CreatedBy,
		&account.LastUpdatedAt,
		&account.LastUpdatedBy,
	)
	if err != nil {
		return models.Account{}, err
	}
	account.ParentAccountID = parentID.String
	account.Description = description.String
	return account, nil
}

// SaveAccount inserts a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAccount := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	parentID := sql.NullString{String: modelAccount.ParentAccountID, Valid: modelAccount.ParentAccountID != ""}
	description := sql.NullString{String: modelAccount.Description, Valid: modelAccount.Description != ""}

	_, err := r.Pool.Exec(ctx, query,
		modelAccount.AccountID,
		modelAccount.Code,
		modelAccount.Name,
		modelAccount.AccountType,
		parentID,
		description,
		modelAccount.IsActive,
		modelAccount.CreatedAt,
		modelAccount.CreatedBy,
		modelAccount.LastUpdatedAt,
		modelAccount.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("account code %s already exists: %w", account.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// FindAccountByID retrieves a single account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	modelAccount, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with ID %s not found", accountID))
		}
		return nil, fmt.Errorf("failed to find account by ID: %w", err)
	}

	domainAccount := mapping.ToDomainAccount(modelAccount)
	return &domainAccount, nil
}

// FindAccountByCode retrieves a single account by its chart-of-accounts code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`

	modelAccount, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with code %s not found", code))
		}
		return nil, fmt.Errorf("failed to find account by code: %w", err)
	}

	domainAccount := mapping.ToDomainAccount(modelAccount)
	return &domainAccount, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs, keyed by ID.
// IDs with no matching row are simply absent from the result.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		modelAccount, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[modelAccount.AccountID] = mapping.ToDomainAccount(modelAccount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// FindAccountsByCodes retrieves multiple accounts keyed by their code.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by codes: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(codes))
	for rows.Next() {
		modelAccount, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[modelAccount.Code] = mapping.ToDomainAccount(modelAccount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts ordered by code, optionally filtered by type
// and active state.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountListFilter, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.AccountType != nil {
		query += fmt.Sprintf(" AND account_type = $%d", argPos)
		args = append(args, *filter.AccountType)
		argPos++
	}
	if filter.ActiveOnly {
		query += " AND is_active = TRUE"
	}
	query += fmt.Sprintf(" ORDER BY code ASC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		modelAccount, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, modelAccount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// UpdateAccount updates the mutable details of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAccount := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, description = $3, parent_account_id = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;`

	parentID := sql.NullString{String: modelAccount.ParentAccountID, Valid: modelAccount.ParentAccountID != ""}
	description := sql.NullString{String: modelAccount.Description, Valid: modelAccount.Description != ""}

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAccount.AccountID,
		modelAccount.Name,
		description,
		parentID,
		modelAccount.IsActive,
		modelAccount.LastUpdatedAt,
		modelAccount.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("account with ID %s not found for update", account.AccountID))
	}
	return nil
}

// DeactivateAccount marks an account inactive without touching its history.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1 AND is_active = TRUE;`

	cmdTag, err := r.Pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already inactive; a second lookup disambiguates.
		if _, findErr := r.FindAccountByID(ctx, accountID); findErr != nil {
			return findErr
		}
	}
	return nil
}

// FindAccountsByIDsForUpdate locks the given accounts inside tx. Every
// requested ID must exist, otherwise the posting must not proceed.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for update: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		modelAccount, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[modelAccount.AccountID] = mapping.ToDomainAccount(modelAccount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			slog.WarnContext(ctx, "Account referenced by journal line does not exist", slog.String("account_id", id))
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with ID %s not found", id))
		}
	}
	return accounts, nil
}
