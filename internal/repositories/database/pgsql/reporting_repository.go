package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/openbooks-app/openbooks/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
)

// PgxReportingRepository implements the reporting aggregation queries using pgx
type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new reporting repository instance.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetAccountBalances aggregates posted lines per account up to asOf. The raw
// sum is debit minus credit; the sign flips for credit-normal accounts so a
// liability in credit shows as a positive balance.
func (r *PgxReportingRepository) GetAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
			COALESCE(SUM(l.debit_amount - l.credit_amount), 0) AS raw_balance
		FROM accounts a
		JOIN journal_lines l ON l.account_id = a.account_id
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE e.status = $1 AND e.entry_date <= $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code ASC;`

	rows, err := r.Pool.Query(ctx, query, domain.Posted, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var balance domain.AccountBalance
		var raw decimal.Decimal
		if err := rows.Scan(&balance.AccountID, &balance.Code, &balance.Name, &balance.AccountType, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		if domain.NormalSideFor(balance.AccountType) == domain.CreditNormal {
			balance.Balance = raw.Neg()
		} else {
			balance.Balance = raw
		}
		balances = append(balances, balance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	return balances, nil
}

// GetPeriodActivity aggregates posted revenue and expense lines for entries
// dated within [from, to], each signed to its account's normal side.
func (r *PgxReportingRepository) GetPeriodActivity(ctx context.Context, from, to time.Time) ([]domain.AccountBalance, []domain.AccountBalance, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
			COALESCE(SUM(l.debit_amount - l.credit_amount), 0) AS raw_balance
		FROM accounts a
		JOIN journal_lines l ON l.account_id = a.account_id
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE e.status = $1 AND e.entry_date >= $2 AND e.entry_date <= $3
			AND a.account_type IN ($4, $5)
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code ASC;`

	rows, err := r.Pool.Query(ctx, query, domain.Posted, from, to, domain.Revenue, domain.Expense)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query period activity: %w", err)
	}
	defer rows.Close()

	revenue := []domain.AccountBalance{}
	expenses := []domain.AccountBalance{}
	for rows.Next() {
		var balance domain.AccountBalance
		var raw decimal.Decimal
		if err := rows.Scan(&balance.AccountID, &balance.Code, &balance.Name, &balance.AccountType, &raw); err != nil {
			return nil, nil, fmt.Errorf("failed to scan period activity row: %w", err)
		}
		if balance.AccountType == domain.Revenue {
			balance.Balance = raw.Neg()
			revenue = append(revenue, balance)
		} else {
			balance.Balance = raw
			expenses = append(expenses, balance)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating period activity rows: %w", err)
	}
	return revenue, expenses, nil
}

// GetCashMovements returns the posted lines hitting the given cash accounts
// within [from, to], with their owning entry's metadata for classification.
func (r *PgxReportingRepository) GetCashMovements(ctx context.Context, cashAccountIDs []string, from, to time.Time) ([]domain.CashMovement, error) {
	if len(cashAccountIDs) == 0 {
		return []domain.CashMovement{}, nil
	}

	query := `
		SELECT e.journal_entry_id, e.entry_date, e.description, e.transaction_type,
			l.debit_amount, l.credit_amount
		FROM journal_lines l
		JOIN journal_entries e ON e.journal_entry_id = l.journal_entry_id
		WHERE l.account_id = ANY($1) AND e.status = $2
			AND e.entry_date >= $3 AND e.entry_date <= $4
		ORDER BY e.entry_date ASC, e.entry_number ASC;`

	rows, err := r.Pool.Query(ctx, query, cashAccountIDs, domain.Posted, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash movements: %w", err)
	}
	defer rows.Close()

	movements := []domain.CashMovement{}
	for rows.Next() {
		var movement domain.CashMovement
		if err := rows.Scan(
			&movement.JournalEntryID,
			&movement.EntryDate,
			&movement.Description,
			&movement.TransactionType,
			&movement.DebitAmount,
			&movement.CreditAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash movement row: %w", err)
		}
		movements = append(movements, movement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash movement rows: %w", err)
	}
	return movements, nil
}
