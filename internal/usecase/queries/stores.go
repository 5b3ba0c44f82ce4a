package queries

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"

	"github.com/google/uuid"
)

// Read stores consumed by the query side. Implementations live in infra/readstore.

type SaunaReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*sauna.Sauna, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*SaunaView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindActiveCovering(ctx context.Context, saunaID uuid.UUID, at time.Time) (*Occupancy, error)
	ListActiveInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]Occupancy, error)
	ListViewsInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}

type SharedReservationReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*SharedReservationView, error)
	ListInRange(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]Occupancy, error)
}
