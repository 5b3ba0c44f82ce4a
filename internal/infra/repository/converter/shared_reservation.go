package converter

import (
	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/sharedreservation"
	"sauna-reservation/internal/domain/slot"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func SharedReservationToInfra(s *sharedreservation.SharedReservation) sqlc.CreateSharedReservationParams {
	ts := s.TimeSlot()
	return sqlc.CreateSharedReservationParams{
		ID:        s.ID(),
		SaunaID:   s.SaunaID(),
		Name:      s.Name(),
		StartTime: pgconv.TimeToPgtype(ts.Start()),
		EndTime:   pgconv.TimeToPgtype(ts.End()),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ParticipantToInfra(sharedID uuid.UUID, p sharedreservation.Participant) sqlc.AddSharedReservationParticipantParams {
	return sqlc.AddSharedReservationParticipantParams{
		SharedReservationID: sharedID,
		BoatID:              p.BoatID,
		Adults:              toInt32(p.Party.Adults()),
		Kids:                toInt32(p.Party.Kids()),
		JoinedAt:            pgconv.TimeToPgtype(p.JoinedAt),
	}
}

func SharedReservationFromInfra(row sqlc.GetSharedReservationByIDRow, participants []sqlc.ListSharedReservationParticipantsRow) *sharedreservation.SharedReservation {
	ps := make([]sharedreservation.Participant, 0, len(participants))
	for _, p := range participants {
		ps = append(ps, sharedreservation.Participant{
			BoatID:   p.BoatID,
			Party:    party.Reconstruct(int(p.Adults), int(p.Kids)),
			JoinedAt: pgconv.TimeFromPgtype(p.JoinedAt),
		})
	}
	return sharedreservation.ReconstructSharedReservation(
		row.ID,
		row.SaunaID,
		row.Name,
		slot.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime)),
		ps,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

// CommitmentFromInfra maps one UNION ALL row onto its dailylimit variant.
func CommitmentFromInfra(row sqlc.ListBoatCommitmentsRow) dailylimit.Commitment {
	ts := slot.ReconstructTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if dailylimit.Kind(row.Kind) == dailylimit.KindShared {
		return dailylimit.Shared{
			SharedReservationID: row.CommitmentID,
			Sauna:               row.SaunaID,
			TimeSlot:            ts,
			Party:               party.Reconstruct(int(row.Adults), int(row.Kids)),
		}
	}
	return dailylimit.Individual{
		ReservationID: row.CommitmentID,
		Sauna:         row.SaunaID,
		TimeSlot:      ts,
	}
}
