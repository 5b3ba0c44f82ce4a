package response

import (
	"time"

	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type NextAvailableResponse struct {
	SaunaID   uuid.UUID `json:"saunaId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    string    `json:"reason"`
}

type CommitmentResponse struct {
	Kind      string    `json:"kind"`
	ID        uuid.UUID `json:"id"`
	SaunaID   uuid.UUID `json:"saunaId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type DailyLimitResponse struct {
	BoatID                   uuid.UUID           `json:"boatId"`
	IslandID                 uuid.UUID           `json:"islandId"`
	Date                     string              `json:"date"`
	CanReserve               bool                `json:"canReserve"`
	HasIndividualReservation bool                `json:"hasIndividualReservation"`
	HasSharedParticipation   bool                `json:"hasSharedParticipation"`
	Existing                 *CommitmentResponse `json:"existing,omitempty"`
}

type ClubSaunaEligibilityResponse struct {
	Date     string `json:"date"`
	Eligible bool   `json:"eligible"`
	Season   string `json:"season,omitempty"`
}

func FromNextAvailableView(v *queries.NextAvailableView) *NextAvailableResponse {
	return &NextAvailableResponse{
		SaunaID:   v.SaunaID,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Reason:    v.Reason,
	}
}

func FromDailyLimitView(v *queries.DailyLimitView) *DailyLimitResponse {
	res := &DailyLimitResponse{
		BoatID:                   v.BoatID,
		IslandID:                 v.IslandID,
		Date:                     v.Date,
		CanReserve:               v.CanReserve,
		HasIndividualReservation: v.HasIndividualReservation,
		HasSharedParticipation:   v.HasSharedParticipation,
	}
	if v.Existing != nil {
		res.Existing = &CommitmentResponse{
			Kind:      v.Existing.Kind,
			ID:        v.Existing.ID,
			SaunaID:   v.Existing.SaunaID,
			StartTime: v.Existing.StartTime,
			EndTime:   v.Existing.EndTime,
		}
	}
	return res
}

func FromClubSaunaEligibilityView(v *queries.ClubSaunaEligibilityView) *ClubSaunaEligibilityResponse {
	return &ClubSaunaEligibilityResponse{
		Date:     v.Date,
		Eligible: v.Eligible,
		Season:   v.Season,
	}
}
