package repository

import (
	"context"

	"sauna-reservation/internal/infra"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SaunaLockQueries interface {
	LockSaunaForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Saunas, error)
}

type SaunaRepository struct {
	queries SaunaLockQueries
}

func NewSaunaRepository(queries SaunaLockQueries) *SaunaRepository {
	return &SaunaRepository{queries: queries}
}

// LockForUpdate holds the sauna row until tx ends. Every write that checks the
// sauna's occupancy takes it first, so two checks on one sauna never interleave.
func (r *SaunaRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, saunaID uuid.UUID) error {
	if _, err := r.queries.LockSaunaForUpdate(ctx, tx, saunaID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("sauna not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock sauna", err)
	}
	return nil
}
