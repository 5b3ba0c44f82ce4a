package repository

import (
	"context"

	"sauna-reservation/internal/infra"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BoatLockQueries interface {
	LockBoatForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Boats, error)
}

type BoatRepository struct {
	queries BoatLockQueries
}

func NewBoatRepository(queries BoatLockQueries) *BoatRepository {
	return &BoatRepository{queries: queries}
}

// LockForUpdate holds the boat row until tx ends so commitment checks of one boat run one at a time.
func (r *BoatRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, boatID uuid.UUID) error {
	if _, err := r.queries.LockBoatForUpdate(ctx, tx, boatID); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("boat not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock boat", err)
	}
	return nil
}
