package readstore

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository/converter"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CommitmentReadQueries interface {
	ListBoatCommitments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBoatCommitmentsParams) ([]sqlc.ListBoatCommitmentsRow, error)
}

type CommitmentReadStore struct {
	queries CommitmentReadQueries
	db      sqlc.DBTX
}

func NewCommitmentReadStore(queries CommitmentReadQueries, db sqlc.DBTX) *CommitmentReadStore {
	return &CommitmentReadStore{
		queries: queries,
		db:      db,
	}
}

// BoatCommitments reads individual reservations and shared participations in one round trip.
func (r *CommitmentReadStore) BoatCommitments(ctx context.Context, boatID, islandID uuid.UUID, dayStart, dayEnd time.Time) ([]dailylimit.Commitment, error) {
	rows, err := r.queries.ListBoatCommitments(ctx, r.db, sqlc.ListBoatCommitmentsParams{
		BoatID:   boatID,
		IslandID: islandID,
		DayStart: pgconv.TimeToPgtype(dayStart),
		DayEnd:   pgconv.TimeToPgtype(dayEnd),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boat commitments", err)
	}
	out := make([]dailylimit.Commitment, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.CommitmentFromInfra(row))
	}
	return out, nil
}
