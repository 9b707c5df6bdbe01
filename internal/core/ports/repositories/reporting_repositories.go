package repositories

import (
	"context"
	"time"

	"github.com/openbooks-app/openbooks/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries over posted
// journal lines. Draft and cancelled entries never contribute.
type ReportingRepository interface {
	// GetAccountBalances returns the signed balance of every account with
	// activity up to and including asOf. Signs follow the account's normal side.
	GetAccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountBalance, error)

	// GetPeriodActivity returns net revenue and expense balances for entries
	// dated within [from, to].
	GetPeriodActivity(ctx context.Context, from, to time.Time) (revenue []domain.AccountBalance, expenses []domain.AccountBalance, err error)

	// GetCashMovements returns the lines touching the given cash accounts for
	// entries dated within [from, to], with their owning entry's metadata.
	GetCashMovements(ctx context.Context, cashAccountIDs []string, from, to time.Time) ([]domain.CashMovement, error)
}
