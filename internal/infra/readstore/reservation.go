package readstore

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository/converter"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"
	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	GetActiveReservationCovering(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveReservationCoveringParams) (sqlc.Reservations, error)
	ListActiveReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveReservationsInRangeParams) ([]sqlc.Reservations, error)
	ListReservationViewsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationViewsInRangeParams) ([]sqlc.ListReservationViewsInRangeRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return converter.ReservationFromInfra(row), nil
}

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return &queries.ReservationView{
		ID:          row.ID,
		SaunaID:     row.SaunaID,
		SaunaName:   row.SaunaName,
		IslandID:    row.IslandID,
		BoatID:      row.BoatID,
		BoatName:    row.BoatName,
		StartTime:   pgconv.TimeFromPgtype(row.StartTime),
		EndTime:     pgconv.TimeFromPgtype(row.EndTime),
		Adults:      int(row.Adults),
		Kids:        int(row.Kids),
		Status:      row.Status,
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// FindActiveCovering returns nil without error when nothing occupies the sauna at at.
func (r *ReservationReadStore) FindActiveCovering(ctx context.Context, saunaID uuid.UUID, at time.Time) (*queries.Occupancy, error) {
	row, err := r.queries.GetActiveReservationCovering(ctx, r.db, sqlc.GetActiveReservationCoveringParams{
		SaunaID: saunaID,
		At:      pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get reservation covering time", err)
	}
	return &queries.Occupancy{
		Start: pgconv.TimeFromPgtype(row.StartTime),
		End:   pgconv.TimeFromPgtype(row.EndTime),
	}, nil
}

func (r *ReservationReadStore) ListActiveInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]queries.Occupancy, error) {
	rows, err := r.queries.ListActiveReservationsInRange(ctx, r.db, sqlc.ListActiveReservationsInRangeParams{
		SaunaID:    saunaID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
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

func (r *ReservationReadStore) ListViewsInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsInRange(ctx, r.db, sqlc.ListReservationViewsInRangeParams{
		SaunaID:    saunaID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.ReservationView{
			ID:          row.ID,
			SaunaID:     row.SaunaID,
			SaunaName:   row.SaunaName,
			IslandID:    row.IslandID,
			BoatID:      row.BoatID,
			BoatName:    row.BoatName,
			StartTime:   pgconv.TimeFromPgtype(row.StartTime),
			EndTime:     pgconv.TimeFromPgtype(row.EndTime),
			Adults:      int(row.Adults),
			Kids:        int(row.Kids),
			Status:      row.Status,
			CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}
