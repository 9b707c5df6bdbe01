package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// SequenceRepository hands out values from named monotonic counters. The
// bump must happen inside the caller's transaction so the counter row lock
// serializes concurrent consumers and a rollback releases the value's slot
// without gaps for readers that only see committed rows.
type SequenceRepository interface {
	// NextValueInTx increments and returns the named counter within tx.
	NextValueInTx(ctx context.Context, tx pgx.Tx, name string) (int64, error)
}
