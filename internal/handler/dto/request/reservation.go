package request

import (
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/slot"
	"sauna-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SaunaID   uuid.UUID `json:"saunaId" binding:"required"`
	BoatID    uuid.UUID `json:"boatId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Adults    int       `json:"adults" binding:"min=0"`
	Kids      *int      `json:"kids,omitempty" binding:"omitempty,min=0"`
}

func (r CreateReservationRequest) GetKids() int {
	return patch.Coalesce(r.Kids, 0)
}

// ToDomain validates the slot and the party; lead time and limits are checked by the use case.
func (r CreateReservationRequest) ToDomain() (slot.TimeSlot, party.Party, error) {
	ts, err := slot.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		return slot.TimeSlot{}, party.Party{}, err
	}
	p, err := party.New(r.Adults, r.GetKids())
	if err != nil {
		return slot.TimeSlot{}, party.Party{}, err
	}
	return ts, p, nil
}
