package readstore

import (
	"context"
	"time"

	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository/converter"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"
	"sauna-reservation/internal/usecase/queries"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SharedReservationReadQueries interface {
	GetSharedReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSharedReservationByIDRow, error)
	ListSharedReservationParticipants(ctx context.Context, db sqlc.DBTX, sharedReservationID uuid.UUID) ([]sqlc.ListSharedReservationParticipantsRow, error)
	ListSharedReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSharedReservationsInRangeParams) ([]sqlc.SharedReservations, error)
	SharedReservationExistsAt(ctx context.Context, db sqlc.DBTX, arg sqlc.SharedReservationExistsAtParams) (bool, error)
}

type SharedReservationReadStore struct {
	queries SharedReservationReadQueries
	db      sqlc.DBTX
}

func NewSharedReservationReadStore(queries SharedReservationReadQueries, db sqlc.DBTX) *SharedReservationReadStore {
	return &SharedReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SharedReservationReadStore) load(ctx context.Context, id uuid.UUID) (sqlc.GetSharedReservationByIDRow, []sqlc.ListSharedReservationParticipantsRow, error) {
	row, err := r.queries.GetSharedReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return row, nil, infra.WrapRepoErr("shared reservation not found", err, infra.KindNotFound)
		}
		return row, nil, infra.WrapRepoErr("failed to get shared reservation by id", err)
	}
	participants, err := r.queries.ListSharedReservationParticipants(ctx, r.db, id)
	if err != nil {
		return row, nil, infra.WrapRepoErr("failed to list shared reservation participants", err)
	}
	return row, participants, nil
}

func (r *SharedReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.SharedReservationSnapshot, error) {
	row, participants, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.SharedReservationSnapshot{
		Session:  converter.SharedReservationFromInfra(row, participants),
		IslandID: row.IslandID,
	}, nil
}

func (r *SharedReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.SharedReservationView, error) {
	row, participants, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &queries.SharedReservationView{
		ID:           row.ID,
		SaunaID:      row.SaunaID,
		SaunaName:    row.SaunaName,
		IslandID:     row.IslandID,
		Name:         row.Name,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		EndTime:      pgconv.TimeFromPgtype(row.EndTime),
		Participants: make([]queries.ParticipantView, 0, len(participants)),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for _, p := range participants {
		view.Participants = append(view.Participants, queries.ParticipantView{
			BoatID:   p.BoatID,
			BoatName: p.BoatName,
			Adults:   int(p.Adults),
			Kids:     int(p.Kids),
			JoinedAt: pgconv.TimeFromPgtype(p.JoinedAt),
		})
		view.TotalAdults += int(p.Adults)
		view.TotalKids += int(p.Kids)
	}
	return view, nil
}

func (r *SharedReservationReadStore) ListInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]queries.Occupancy, error) {
	rows, err := r.queries.ListSharedReservationsInRange(ctx, r.db, sqlc.ListSharedReservationsInRangeParams{
		SaunaID:    saunaID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shared reservations", err)
	}
	out := make([]queries.Occupancy, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.Occupancy{
			Start: pgconv.TimeFromPgtype(row.StartTime),
			End:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return out, nil
}

func (r *SharedReservationReadStore) ExistsAt(ctx context.Context, saunaID uuid.UUID, start time.Time) (bool, error) {
	exists, err := r.queries.SharedReservationExistsAt(ctx, r.db, sqlc.SharedReservationExistsAtParams{
		SaunaID:   saunaID,
		StartTime: pgconv.TimeToPgtype(start),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check shared reservation", err)
	}
	return exists, nil
}
