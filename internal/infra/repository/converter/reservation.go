package converter

import (
	"fmt"
	"math"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/slot"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	ts := res.TimeSlot()
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		SaunaID:   res.SaunaID(),
		BoatID:    res.BoatID(),
		StartTime: pgconv.TimeToPgtype(ts.Start()),
		EndTime:   pgconv.TimeToPgtype(ts.End()),
		Adults:    toInt32(res.Party().Adults()),
		Kids:      toInt32(res.Party().Kids()),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationStatusToInfra(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:          res.ID(),
		Status:      res.Status().String(),
		CancelledAt: pgconv.TimePtrToPgtype(res.CancelledAt()),
		UpdatedAt:   pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromInfra(row sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.SaunaID,
		row.BoatID,
		slot.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		party.Reconstruct(int(row.Adults), int(row.Kids)),
		reservation.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SaunaFromInfra(row sqlc.Saunas) *sauna.Sauna {
	return sauna.ReconstructSauna(
		row.ID,
		row.IslandID,
		row.Name,
		int(row.HeatingTimeHours),
		row.AutoClubSauna,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

// Party sizes are capped far below int32 by the domain.
func toInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v) // #nosec G115 -- range checked above
}
