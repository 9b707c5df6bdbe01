package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/openbooks-app/openbooks/internal/core/ports/repositories"
)

// PgxSequenceRepository implements the SequenceRepository interface using pgx
type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new sequence repository instance.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextValueInTx bumps the named counter and returns the new value. The upsert
// takes a row lock on the counter, so concurrent transactions serialize here
// and no two committed consumers ever see the same value.
func (r *PgxSequenceRepository) NextValueInTx(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, current_value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET current_value = sequences.current_value + 1
		RETURNING current_value;`

	var value int64
	if err := tx.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance sequence %s: %w", name, err)
	}
	return value, nil
}
