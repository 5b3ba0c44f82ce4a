package dailylimit

import (
	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/slot"

	"github.com/google/uuid"
)

type Kind string

const (
	KindIndividual Kind = "individual"
	KindShared     Kind = "shared"
)

// Commitment is anything that occupies a boat's sauna allowance for a day.
// The set of variants is closed: Individual and Shared.
type Commitment interface {
	Kind() Kind
	SaunaID() uuid.UUID
	Slot() slot.TimeSlot
	commitment()
}

type Individual struct {
	ReservationID uuid.UUID
	Sauna         uuid.UUID
	TimeSlot      slot.TimeSlot
}

func (Individual) Kind() Kind            { return KindIndividual }
func (c Individual) SaunaID() uuid.UUID  { return c.Sauna }
func (c Individual) Slot() slot.TimeSlot { return c.TimeSlot }
func (Individual) commitment()           {}

type Shared struct {
	SharedReservationID uuid.UUID
	Sauna               uuid.UUID
	TimeSlot            slot.TimeSlot
	Party               party.Party
}

func (Shared) Kind() Kind            { return KindShared }
func (c Shared) SaunaID() uuid.UUID  { return c.Sauna }
func (c Shared) Slot() slot.TimeSlot { return c.TimeSlot }
func (Shared) commitment()           {}
