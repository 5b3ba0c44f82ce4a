package response

import (
	"time"

	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ParticipantResponse struct {
	BoatID   uuid.UUID `json:"boatId"`
	BoatName string    `json:"boatName"`
	Adults   int       `json:"adults"`
	Kids     int       `json:"kids"`
	JoinedAt time.Time `json:"joinedAt"`
}

type SharedReservationResponse struct {
	ID           uuid.UUID             `json:"id"`
	SaunaID      uuid.UUID             `json:"saunaId"`
	SaunaName    string                `json:"saunaName"`
	IslandID     uuid.UUID             `json:"islandId"`
	Name         string                `json:"name"`
	StartTime    time.Time             `json:"startTime"`
	EndTime      time.Time             `json:"endTime"`
	Participants []ParticipantResponse `json:"participants"`
	TotalAdults  int                   `json:"totalAdults"`
	TotalKids    int                   `json:"totalKids"`
	CreatedAt    time.Time             `json:"createdAt"`
}

type CreateSharedReservationResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromSharedReservationView(v *queries.SharedReservationView) (*SharedReservationResponse, error) {
	var res SharedReservationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map shared reservation view")
	}
	if res.Participants == nil {
		res.Participants = []ParticipantResponse{}
	}
	return &res, nil
}
