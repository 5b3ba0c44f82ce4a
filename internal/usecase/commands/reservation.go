package commands

import (
	"context"
	"errors"
	"time"

	"sauna-reservation/internal/domain/party"
	"sauna-reservation/internal/domain/reservation"
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/domain/slot"
	reqdto "sauna-reservation/internal/handler/dto/request"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, actor shared.Actor) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID, actor shared.Actor) error
	CompleteEnded(ctx context.Context) (int64, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	actor shared.Actor,
) (*CreateReservationResult, error) {
	if !actor.ActsForBoat(req.BoatID) {
		return nil, errs.ErrForbidden
	}

	ts, p, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := uc.createInTx(ctx, tx, req.SaunaID, req.BoatID, ts, p)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{ReservationID: createdID}, nil
}

func (uc *reservationUseCaseImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	saunaID, boatID uuid.UUID,
	ts slot.TimeSlot,
	p party.Party,
) (uuid.UUID, error) {
	s, err := lockSauna(ctx, tx, saunaID)
	if err != nil {
		return uuid.Nil, err
	}
	if err = lockBoat(ctx, tx, boatID); err != nil {
		return uuid.Nil, err
	}

	services := &reservation.Services{Clock: uc.clock}
	res, err := reservation.NewReservation(services, s.ID(), boatID, ts, p)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	limit, err := shared.CheckDailyLimit(ctx, tx.Reads(), uc.loc, boatID, s.IslandID(), ts.Start())
	if err != nil {
		return uuid.Nil, err
	}
	if err = limit.Err(); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDailyLimitReached)
	}

	now := uc.clock.Now()
	occupied, err := tx.Reads().SaunaOccupancy(ctx, s.ID(), now, ts.End())
	if err != nil {
		return uuid.Nil, err
	}
	if overlapsAny(ts, occupied) {
		return uuid.Nil, errs.ErrReservationConflict
	}
	if !s.MeetsHeatingLeadTime(ts.Start(), now, occupied) {
		return uuid.Nil, errs.ErrInsufficientLeadTime
	}

	id, err := tx.Reservations().Create(ctx, tx.DB(), res)
	if err != nil {
		return uuid.Nil, mapWriteErr(err, errs.ErrReservationConflict)
	}
	return id, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return err
		}
		if !actor.ActsForBoat(res.BoatID()) {
			return errs.ErrForbidden
		}

		if err = res.Cancel(uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrCannotCancel)
		}
		if err = tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return err
		}
		return nil
	})
}

// CompleteEnded moves every active reservation whose slot is over to completed.
func (uc *reservationUseCaseImpl) CompleteEnded(ctx context.Context) (int64, error) {
	var completed int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().CompleteEnded(ctx, tx.DB(), uc.clock.Now())
		if err != nil {
			return err
		}
		completed = n
		return nil
	})
	return completed, err
}

func loadSauna(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*sauna.Sauna, error) {
	s, err := reads.SaunaByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSaunaNotFound)
		}
		return nil, err
	}
	return s, nil
}

// lockSauna takes the sauna row lock before loading it. Occupancy checks of one
// sauna run one at a time across individual and shared reservations.
func lockSauna(ctx context.Context, tx shared.Tx, saunaID uuid.UUID) (*sauna.Sauna, error) {
	if err := tx.Saunas().LockForUpdate(ctx, tx.DB(), saunaID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSaunaNotFound)
		}
		return nil, err
	}
	return loadSauna(ctx, tx.Reads(), saunaID)
}

// lockBoat serialises every commitment write of one boat.
func lockBoat(ctx context.Context, tx shared.Tx, boatID uuid.UUID) error {
	if err := tx.Boats().LockForUpdate(ctx, tx.DB(), boatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBoatNotFound)
		}
		return err
	}
	return nil
}

func overlapsAny(ts slot.TimeSlot, windows []sauna.Window) bool {
	for _, w := range windows {
		if slot.Overlaps(ts.Start(), ts.End(), w.Start, w.End) {
			return true
		}
	}
	return false
}

// mapWriteErr marks constraint violations with onConflict.
func mapWriteErr(err error, onConflict error) error {
	var repoErr infra.RepositoryError
	if !errors.As(err, &repoErr) {
		return err
	}
	switch repoErr.Kind {
	case infra.KindConflict, infra.KindDuplicateKey:
		return errs.Mark(err, onConflict)
	case infra.KindForeignKeyViolated:
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
