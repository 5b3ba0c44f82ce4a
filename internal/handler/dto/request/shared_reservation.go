package request

import (
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

type CreateSharedReservationRequest struct {
	SaunaID   uuid.UUID `json:"saunaId" binding:"required"`
	Name      string    `json:"name" binding:"required,max=255"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type JoinSharedReservationRequest struct {
	BoatID uuid.UUID `json:"boatId" binding:"required"`
	Adults int       `json:"adults" binding:"min=0"`
	Kids   *int      `json:"kids,omitempty" binding:"omitempty,min=0"`
}

func (r JoinSharedReservationRequest) ToParty() (party.Party, error) {
	return party.New(r.Adults, patch.Coalesce(r.Kids, 0))
}
