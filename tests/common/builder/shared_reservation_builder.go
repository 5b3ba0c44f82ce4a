//go:build unit || e2e

package builder

import (
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/sharedreservation"
	"sauna-reservation/internal/domain/slot"
	reqdto "sauna-reservation/internal/handler/dto/request"
	"sauna-reservation/internal/pkg/patch"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SharedReservationBuilder struct {
	ID           uuid.UUID
	SaunaID      uuid.UUID
	IslandID     uuid.UUID
	Name         string
	StartTime    time.Time
	Hours        int
	Participants []sharedreservation.Participant
	Now          time.Time
}

func NewSharedReservationBuilder() *SharedReservationBuilder {
	return &SharedReservationBuilder{
		ID:        uuid.New(),
		SaunaID:   uuid.New(),
		IslandID:  uuid.New(),
		Name:      "Club sauna (high season)",
		StartTime: time.Date(2025, 7, 4, 17, 0, 0, 0, time.UTC),
		Hours:     3,
		Now:       time.Date(2025, 7, 3, 12, 20, 0, 0, time.UTC),
	}
}

func (b *SharedReservationBuilder) WithParticipant(boatID uuid.UUID, adults, kids int) *SharedReservationBuilder {
	b.Participants = append(b.Participants, sharedreservation.Participant{
		BoatID:   boatID,
		Party:    party.Reconstruct(adults, kids),
		JoinedAt: b.Now,
	})
	return b
}

func (b *SharedReservationBuilder) WithNow(now time.Time) *SharedReservationBuilder {
	b.Now = now
	return b
}

func (b *SharedReservationBuilder) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.Hours) * time.Hour)
}

func (b *SharedReservationBuilder) BuildReconstructed() *sharedreservation.SharedReservation {
	participants := append([]sharedreservation.Participant(nil), b.Participants...)
	return sharedreservation.ReconstructSharedReservation(
		b.ID,
		b.SaunaID,
		b.Name,
		slot.ReconstructTimeSlot(b.StartTime, b.EndTime()),
		participants,
		b.Now,
	)
}

func (b *SharedReservationBuilder) BuildSnapshot() *shared.SharedReservationSnapshot {
	return &shared.SharedReservationSnapshot{Session: b.BuildReconstructed(), IslandID: b.IslandID}
}

// BuildSauna returns the sauna hosting the session.
func (b *SharedReservationBuilder) BuildSauna(heatingHours int) *sauna.Sauna {
	return sauna.ReconstructSauna(b.SaunaID, b.IslandID, "Rantasauna", heatingHours, true, b.Now, b.Now)
}

func (b *SharedReservationBuilder) BuildCreateRequestDTO() reqdto.CreateSharedReservationRequest {
	return reqdto.CreateSharedReservationRequest{
		SaunaID:   b.SaunaID,
		Name:      b.Name,
		StartTime: b.StartTime,
		EndTime:   b.EndTime(),
	}
}

func (b *SharedReservationBuilder) BuildJoinRequestDTO(boatID uuid.UUID, adults, kids int) reqdto.JoinSharedReservationRequest {
	return reqdto.JoinSharedReservationRequest{BoatID: boatID, Adults: adults, Kids: patch.Ptr(kids)}
}
