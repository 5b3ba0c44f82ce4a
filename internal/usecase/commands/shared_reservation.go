package commands

import (
	"context"
	"errors"
	"time"

	"sauna-reservation/internal/domain/sharedreservation"
	reqdto "sauna-reservation/internal/handler/dto/request"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSharedReservationResult struct {
	SharedReservationID uuid.UUID
}

type SharedReservationCommands interface {
	CreateSharedReservation(ctx context.Context, req reqdto.CreateSharedReservationRequest, actor shared.Actor) (*CreateSharedReservationResult, error)
	JoinSharedReservation(ctx context.Context, id uuid.UUID, req reqdto.JoinSharedReservationRequest, actor shared.Actor) error
	LeaveSharedReservation(ctx context.Context, id, boatID uuid.UUID, actor shared.Actor) error
}

type sharedReservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewSharedReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) SharedReservationCommands {
	return &sharedReservationUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (uc *sharedReservationUseCaseImpl) CreateSharedReservation(
	ctx context.Context,
	req reqdto.CreateSharedReservationRequest,
	actor shared.Actor,
) (*CreateSharedReservationResult, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := createSession(ctx, tx, uc.clock.Now(), req.SaunaID, req.Name, req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSharedReservationResult{SharedReservationID: createdID}, nil
}

// createSession is shared by the admin command and the club sauna scheduler.
func createSession(ctx context.Context, tx shared.Tx, now time.Time, saunaID uuid.UUID, name string, start, end time.Time) (uuid.UUID, error) {
	s, err := lockSauna(ctx, tx, saunaID)
	if err != nil {
		return uuid.Nil, err
	}

	session, err := sharedreservation.NewSharedReservation(s.ID(), name, start, end, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !session.TimeSlot().Start().After(now) {
		return uuid.Nil, errs.Mark(sharedreservation.ErrSessionStarted, errs.ErrDomainValidation)
	}

	ts := session.TimeSlot()
	occupied, err := tx.Reads().SaunaOccupancy(ctx, s.ID(), ts.Start(), ts.End())
	if err != nil {
		return uuid.Nil, err
	}
	if overlapsAny(ts, occupied) {
		return uuid.Nil, errs.ErrReservationConflict
	}

	id, err := tx.SharedReservations().Create(ctx, tx.DB(), session)
	if err != nil {
		return uuid.Nil, mapWriteErr(err, errs.ErrReservationConflict)
	}
	return id, nil
}

func (uc *sharedReservationUseCaseImpl) JoinSharedReservation(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.JoinSharedReservationRequest,
	actor shared.Actor,
) error {
	if !actor.ActsForBoat(req.BoatID) {
		return errs.ErrForbidden
	}
	p, err := req.ToParty()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := lockBoat(ctx, tx, req.BoatID); err != nil {
			return err
		}
		snap, err := loadSession(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}
		session := snap.Session
		if session.HasParticipant(req.BoatID) {
			return errs.ErrAlreadyParticipant
		}

		limit, err := shared.CheckDailyLimit(ctx, tx.Reads(), uc.loc, req.BoatID, snap.IslandID, session.TimeSlot().Start())
		if err != nil {
			return err
		}
		if err = limit.Err(); err != nil {
			return errs.Mark(err, errs.ErrDailyLimitReached)
		}

		participant, err := session.AddParticipant(req.BoatID, p, uc.clock.Now())
		if err != nil {
			if errors.Is(err, sharedreservation.ErrAlreadyParticipant) {
				return errs.Mark(err, errs.ErrAlreadyParticipant)
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err = tx.SharedReservations().AddParticipant(ctx, tx.DB(), session.ID(), participant); err != nil {
			return mapWriteErr(err, errs.ErrAlreadyParticipant)
		}
		return nil
	})
}

func (uc *sharedReservationUseCaseImpl) LeaveSharedReservation(ctx context.Context, id, boatID uuid.UUID, actor shared.Actor) error {
	if !actor.ActsForBoat(boatID) {
		return errs.ErrForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := loadSession(ctx, tx.Reads(), id)
		if err != nil {
			return err
		}
		session := snap.Session
		if !uc.clock.Now().Before(session.TimeSlot().Start()) {
			return errs.Mark(sharedreservation.ErrSessionStarted, errs.ErrDomainValidation)
		}
		if err = session.RemoveParticipant(boatID); err != nil {
			return errs.Mark(err, errs.ErrNotParticipant)
		}
		if err = tx.SharedReservations().RemoveParticipant(ctx, tx.DB(), session.ID(), boatID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrNotParticipant)
			}
			return err
		}
		return nil
	})
}

func loadSession(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.SharedReservationSnapshot, error) {
	snap, err := reads.SharedReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSharedReservationNotFound)
		}
		return nil, err
	}
	return snap, nil
}
