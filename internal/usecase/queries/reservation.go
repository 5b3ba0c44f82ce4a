package queries

import (
	"context"
	"time"

	"sauna-reservation/internal/domain/dailylimit"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListSaunaDay(ctx context.Context, saunaID uuid.UUID, date string) ([]*ReservationView, error)
	CancelEligibility(ctx context.Context, id uuid.UUID) (*CancellationView, error)
}

type reservationQueriesImpl struct {
	saunas       SaunaReadStore
	reservations ReservationReadStore
	clock        clock.Clock
	loc          *time.Location
}

func NewReservationQueries(saunas SaunaReadStore, reservations ReservationReadStore, clk clock.Clock, loc *time.Location) ReservationQueries {
	return &reservationQueriesImpl{
		saunas:       saunas,
		reservations: reservations,
		clock:        clk,
		loc:          loc,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

// ListSaunaDay returns every reservation of the sauna starting within date's
// calendar day, cancelled ones included, ordered by start.
func (q *reservationQueriesImpl) ListSaunaDay(ctx context.Context, saunaID uuid.UUID, date string) ([]*ReservationView, error) {
	day, err := clock.ParseDate(date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err = q.saunas.FindViewByID(ctx, saunaID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSaunaNotFound)
		}
		return nil, err
	}

	from, to := clock.DayBounds(day, q.loc)
	return q.reservations.ListViewsInRange(ctx, saunaID, from, to)
}

func (q *reservationQueriesImpl) CancelEligibility(ctx context.Context, id uuid.UUID) (*CancellationView, error) {
	res, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}

	decision := res.CancelEligibility(q.clock.Now())
	return &CancellationView{
		ReservationID: id,
		CanCancel:     decision.CanCancel,
		Reason:        decision.Reason.String(),
	}, nil
}

func commitmentView(c dailylimit.Commitment) *CommitmentView {
	view := &CommitmentView{
		Kind:      string(c.Kind()),
		SaunaID:   c.SaunaID(),
		StartTime: c.Slot().Start(),
		EndTime:   c.Slot().End(),
	}
	switch v := c.(type) {
	case dailylimit.Individual:
		view.ID = v.ReservationID
	case dailylimit.Shared:
		view.ID = v.SharedReservationID
	}
	return view
}
