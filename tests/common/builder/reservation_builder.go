//go:build unit || e2e

package builder

import (
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/slot"
	reqdto "sauna-reservation/internal/handler/dto/request"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/patch"
	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	SaunaID     uuid.UUID
	SaunaName   string
	IslandID    uuid.UUID
	BoatID      uuid.UUID
	BoatName    string
	StartTime   time.Time
	Adults      int
	Kids        int
	Status      reservation.Status
	CancelledAt *time.Time
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 7, 3, 12, 20, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		SaunaID:   uuid.New(),
		SaunaName: "Rantasauna",
		IslandID:  uuid.New(),
		BoatID:    uuid.New(),
		BoatName:  "s/y Ilmatar",
		StartTime: time.Date(2025, 7, 3, 18, 0, 0, 0, time.UTC),
		Adults:    2,
		Kids:      1,
		Status:    reservation.StatusActive,
		Now:       now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStart(start time.Time) *ReservationBuilder {
	b.StartTime = start
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithParty(adults, kids int) *ReservationBuilder {
	b.Adults = adults
	b.Kids = kids
	return b
}

func (b *ReservationBuilder) WithNow(now time.Time) *ReservationBuilder {
	b.Now = now
	return b
}

func (b *ReservationBuilder) EndTime() time.Time {
	return b.StartTime.Add(slot.Length)
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	ts, err := slot.NewTimeSlot(b.StartTime, b.EndTime())
	if err != nil {
		return nil, err
	}
	p, err := party.New(b.Adults, b.Kids)
	if err != nil {
		return nil, err
	}
	services := &reservation.Services{Clock: clock.NewMockClock(b.Now)}
	return reservation.NewReservation(services, b.SaunaID, b.BoatID, ts, p)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		b.SaunaID,
		b.BoatID,
		slot.ReconstructTimeSlot(b.StartTime, b.EndTime()),
		party.Reconstruct(b.Adults, b.Kids),
		b.Status,
		b.CancelledAt,
		b.Now,
		b.Now,
	)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		SaunaID:     b.SaunaID,
		SaunaName:   b.SaunaName,
		IslandID:    b.IslandID,
		BoatID:      b.BoatID,
		BoatName:    b.BoatName,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime(),
		Adults:      b.Adults,
		Kids:        b.Kids,
		Status:      b.Status.String(),
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SaunaID:   b.SaunaID,
		BoatID:    b.BoatID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime(),
		Adults:    b.Adults,
		Kids:      patch.Ptr(b.Kids),
	}
}
