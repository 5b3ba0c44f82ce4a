package response

import (
	"time"

	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	SaunaID     uuid.UUID  `json:"saunaId"`
	SaunaName   string     `json:"saunaName"`
	IslandID    uuid.UUID  `json:"islandId"`
	BoatID      uuid.UUID  `json:"boatId"`
	BoatName    string     `json:"boatName"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Adults      int        `json:"adults"`
	Kids        int        `json:"kids"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreateReservationResponse struct {
	ID uuid.UUID `json:"id"`
}

type CancellationResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	CanCancel     bool      `json:"canCancel"`
	Reason        string    `json:"reason,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation view")
	}
	return &res, nil
}

// FromReservationViews always returns a non-nil slice so empty days encode as [].
func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		r, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func FromCancellationView(v *queries.CancellationView) *CancellationResponse {
	return &CancellationResponse{
		ReservationID: v.ReservationID,
		CanCancel:     v.CanCancel,
		Reason:        v.Reason,
	}
}
