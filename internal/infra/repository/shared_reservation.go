package repository

import (
	"context"

	"sauna-reservation/internal/domain/sharedreservation"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository/converter"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SharedReservationWriteQueries interface {
	CreateSharedReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSharedReservationParams) (uuid.UUID, error)
	AddSharedReservationParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.AddSharedReservationParticipantParams) error
	RemoveSharedReservationParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveSharedReservationParticipantParams) (int64, error)
}

type SharedReservationRepository struct {
	queries SharedReservationWriteQueries
}

func NewSharedReservationRepository(queries SharedReservationWriteQueries) *SharedReservationRepository {
	return &SharedReservationRepository{queries: queries}
}

// Create reports KindDuplicateKey when the sauna already has a session at that start
// and KindConflict when the new session overlaps another one.
func (r *SharedReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, s *sharedreservation.SharedReservation) (uuid.UUID, error) {
	id, err := r.queries.CreateSharedReservation(ctx, tx, converter.SharedReservationToInfra(s))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shared reservation", err)
	}
	return id, nil
}

func (r *SharedReservationRepository) AddParticipant(ctx context.Context, tx sqlc.DBTX, sharedID uuid.UUID, p sharedreservation.Participant) error {
	if err := r.queries.AddSharedReservationParticipant(ctx, tx, converter.ParticipantToInfra(sharedID, p)); err != nil {
		return infra.WrapRepoErr("failed to add shared reservation participant", err)
	}
	return nil
}

func (r *SharedReservationRepository) RemoveParticipant(ctx context.Context, tx sqlc.DBTX, sharedID, boatID uuid.UUID) error {
	affected, err := r.queries.RemoveSharedReservationParticipant(ctx, tx, sqlc.RemoveSharedReservationParticipantParams{
		SharedReservationID: sharedID,
		BoatID:              boatID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to remove shared reservation participant", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("participant not found", nil, infra.KindNotFound)
	}
	return nil
}
