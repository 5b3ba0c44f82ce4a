package reservation

import (
	"errors"
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/slot"
	"sauna-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrSlotInPast      = errors.New("slot starts in the past")
	ErrInvalidStatus   = errors.New("invalid reservation status")
	ErrNotCompletable  = errors.New("reservation cannot be completed yet")
	ErrMissingBoat     = errors.New("boat is required")
	ErrMissingSaunaRef = errors.New("sauna is required")
)

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id          uuid.UUID
	saunaID     uuid.UUID
	boatID      uuid.UUID
	timeSlot    slot.TimeSlot
	party       party.Party
	status      Status
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation expects a slot that already went through slot.NewTimeSlot.
func NewReservation(
	services *Services,
	saunaID, boatID uuid.UUID,
	ts slot.TimeSlot,
	p party.Party,
) (*Reservation, error) {
	if saunaID == uuid.Nil {
		return nil, ErrMissingSaunaRef
	}
	if boatID == uuid.Nil {
		return nil, ErrMissingBoat
	}
	if err := slot.Validate(ts.Start(), ts.End()); err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	if !ts.Start().After(now) {
		return nil, ErrSlotInPast
	}

	return &Reservation{
		id:        uuid.New(),
		saunaID:   saunaID,
		boatID:    boatID,
		timeSlot:  ts,
		party:     p,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, saunaID, boatID uuid.UUID,
	ts slot.TimeSlot,
	p party.Party,
	status Status,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		saunaID:     saunaID,
		boatID:      boatID,
		timeSlot:    ts,
		party:       p,
		status:      status,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) HasEnded(now time.Time) bool {
	return !now.Before(r.timeSlot.End())
}

// Complete closes an active reservation whose slot is over.
func (r *Reservation) Complete(now time.Time) error {
	if !r.IsActive() || !r.HasEnded(now) {
		return ErrNotCompletable
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) SaunaID() uuid.UUID      { return r.saunaID }
func (r *Reservation) BoatID() uuid.UUID       { return r.boatID }
func (r *Reservation) TimeSlot() slot.TimeSlot { return r.timeSlot }
func (r *Reservation) Party() party.Party      { return r.party }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
