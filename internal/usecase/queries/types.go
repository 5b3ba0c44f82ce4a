package queries

import (
	"time"

	"github.com/google/uuid"
)

// SaunaView represents read-optimized sauna data
type SaunaView struct {
	ID               uuid.UUID `json:"id"`
	IslandID         uuid.UUID `json:"island_id"`
	Name             string    `json:"name"`
	HeatingTimeHours int       `json:"heating_time_hours"`
	AutoClubSauna    bool      `json:"auto_club_sauna"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID          uuid.UUID  `json:"id"`
	SaunaID     uuid.UUID  `json:"sauna_id"`
	SaunaName   string     `json:"sauna_name"`
	IslandID    uuid.UUID  `json:"island_id"`
	BoatID      uuid.UUID  `json:"boat_id"`
	BoatName    string     `json:"boat_name"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Adults      int        `json:"adults"`
	Kids        int        `json:"kids"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ParticipantView struct {
	BoatID   uuid.UUID `json:"boat_id"`
	BoatName string    `json:"boat_name"`
	Adults   int       `json:"adults"`
	Kids     int       `json:"kids"`
	JoinedAt time.Time `json:"joined_at"`
}

// SharedReservationView represents a shared session with its participants
type SharedReservationView struct {
	ID           uuid.UUID         `json:"id"`
	SaunaID      uuid.UUID         `json:"sauna_id"`
	SaunaName    string            `json:"sauna_name"`
	IslandID     uuid.UUID         `json:"island_id"`
	Name         string            `json:"name"`
	StartTime    time.Time         `json:"start_time"`
	EndTime      time.Time         `json:"end_time"`
	Participants []ParticipantView `json:"participants"`
	TotalAdults  int               `json:"total_adults"`
	TotalKids    int               `json:"total_kids"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Occupancy is a time range during which the sauna is taken.
type Occupancy struct {
	Start time.Time
	End   time.Time
}

type NextAvailableView struct {
	SaunaID   uuid.UUID `json:"sauna_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `json:"reason"`
}

type CommitmentView struct {
	Kind      string    `json:"kind"`
	ID        uuid.UUID `json:"id"`
	SaunaID   uuid.UUID `json:"sauna_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type DailyLimitView struct {
	BoatID                   uuid.UUID       `json:"boat_id"`
	IslandID                 uuid.UUID       `json:"island_id"`
	Date                     string          `json:"date"`
	CanReserve               bool            `json:"can_reserve"`
	HasIndividualReservation bool            `json:"has_individual_reservation"`
	HasSharedParticipation   bool            `json:"has_shared_participation"`
	Existing                 *CommitmentView `json:"existing,omitempty"`
}

type CancellationView struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CanCancel     bool      `json:"can_cancel"`
	Reason        string    `json:"reason,omitempty"`
}

type ClubSaunaEligibilityView struct {
	Date     string `json:"date"`
	Eligible bool   `json:"eligible"`
	Season   string `json:"season,omitempty"`
}
