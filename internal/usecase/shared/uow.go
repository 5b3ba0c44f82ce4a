package shared

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/sharedreservation"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	SharedReservations() SharedReservationRepository
	Boats() BoatRepository
	Saunas() SaunaRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	CommitmentReader
	SaunaByID(ctx context.Context, id uuid.UUID) (*sauna.Sauna, error)
	AutoClubSaunas(ctx context.Context) ([]*sauna.Sauna, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	SharedReservationByID(ctx context.Context, id uuid.UUID) (*SharedReservationSnapshot, error)
	SharedReservationExistsAt(ctx context.Context, saunaID uuid.UUID, start time.Time) (bool, error)
	// SaunaOccupancy lists active reservations and shared sessions intersecting [from, to), by start.
	SaunaOccupancy(ctx context.Context, saunaID uuid.UUID, from, to time.Time) ([]sauna.Window, error)
}

type CommitmentReader interface {
	BoatCommitments(ctx context.Context, boatID, islandID uuid.UUID, dayStart, dayEnd time.Time) ([]dailylimit.Commitment, error)
}

// SharedReservationSnapshot carries the island so joins can be checked against the daily limit.
type SharedReservationSnapshot struct {
	Session  *sharedreservation.SharedReservation
	IslandID uuid.UUID
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	CompleteEnded(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type SharedReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *sharedreservation.SharedReservation) (uuid.UUID, error)
	AddParticipant(ctx context.Context, tx sqlc.DBTX, sharedID uuid.UUID, p sharedreservation.Participant) error
	RemoveParticipant(ctx context.Context, tx sqlc.DBTX, sharedID, boatID uuid.UUID) error
}

type BoatRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, boatID uuid.UUID) error
}

type SaunaRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, saunaID uuid.UUID) error
}
