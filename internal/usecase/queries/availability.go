package queries

import (
	"context"
	"errors"
	"time"

	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	NextAvailable(ctx context.Context, saunaID uuid.UUID) (*NextAvailableView, error)
	DailyLimit(ctx context.Context, boatID, islandID uuid.UUID, date string) (*DailyLimitView, error)
}

type availabilityQueriesImpl struct {
	saunas       SaunaReadStore
	reservations ReservationReadStore
	sessions     SharedReservationReadStore
	commitments  shared.CommitmentReader
	calculator   sauna.Calculator
	clock        clock.Clock
	loc          *time.Location
}

func NewAvailabilityQueries(
	saunas SaunaReadStore,
	reservations ReservationReadStore,
	sessions SharedReservationReadStore,
	commitments shared.CommitmentReader,
	calculator sauna.Calculator,
	clk clock.Clock,
	loc *time.Location,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		saunas:       saunas,
		reservations: reservations,
		sessions:     sessions,
		commitments:  commitments,
		calculator:   calculator,
		clock:        clk,
		loc:          loc,
	}
}

func (q *availabilityQueriesImpl) NextAvailable(ctx context.Context, saunaID uuid.UUID) (*NextAvailableView, error) {
	s, err := q.saunas.FindByID(ctx, saunaID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSaunaNotFound)
		}
		return nil, err
	}

	now := q.clock.Now()
	span := q.walkSpan()

	current, err := q.reservations.FindActiveCovering(ctx, saunaID, now)
	if err != nil {
		return nil, err
	}
	loadedTo := s.EarliestStart(now).Add(time.Hour + span)
	sessions, err := q.sessions.ListInRange(ctx, saunaID, now, loadedTo)
	if err != nil {
		return nil, err
	}

	var running *sauna.Window
	if current != nil {
		running = &sauna.Window{Start: current.Start, End: current.End}
	}
	for _, o := range sessions {
		if w := (sauna.Window{Start: o.Start, End: o.End}); running == nil && w.Covers(now) {
			running = &w
		}
	}

	// The walk starts where the running window ends, which for a long shared
	// session can lie past the first range.
	until := loadedTo
	if running != nil && running.End.Add(span).After(until) {
		until = running.End.Add(span)
		if sessions, err = q.sessions.ListInRange(ctx, saunaID, now, until); err != nil {
			return nil, err
		}
	}
	booked, err := q.reservations.ListActiveInRange(ctx, saunaID, now, until)
	if err != nil {
		return nil, err
	}

	future := make([]sauna.Window, 0, len(booked)+len(sessions))
	for _, o := range booked {
		future = append(future, sauna.Window{Start: o.Start, End: o.End})
	}
	for _, o := range sessions {
		future = append(future, sauna.Window{Start: o.Start, End: o.End})
	}

	next, err := q.calculator.NextAvailable(s, running, future, now)
	if err != nil {
		if errors.Is(err, sauna.ErrNoSlotWithinLookahead) {
			return nil, errs.Mark(err, errs.ErrNoSlotWithinLookahead)
		}
		return nil, err
	}

	return &NextAvailableView{
		SaunaID:   saunaID,
		StartTime: next.Slot.Start(),
		EndTime:   next.Slot.End(),
		Reason:    next.Reason.String(),
	}, nil
}

// walkSpan is how far past its starting candidate the calculator can look,
// including the one hour buffer after a window that ends soon.
func (q *availabilityQueriesImpl) walkSpan() time.Duration {
	steps := q.calculator.MaxLookahead
	if steps <= 0 {
		steps = sauna.DefaultMaxLookahead
	}
	return time.Duration(steps+2) * time.Hour
}

func (q *availabilityQueriesImpl) DailyLimit(ctx context.Context, boatID, islandID uuid.UUID, date string) (*DailyLimitView, error) {
	day, err := clock.ParseDate(date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	result, err := shared.CheckDailyLimit(ctx, q.commitments, q.loc, boatID, islandID, day)
	if err != nil {
		return nil, err
	}

	view := &DailyLimitView{
		BoatID:                   boatID,
		IslandID:                 islandID,
		Date:                     day.Format(time.DateOnly),
		CanReserve:               result.CanReserve,
		HasIndividualReservation: result.HasIndividualReservation,
		HasSharedParticipation:   result.HasSharedParticipation,
	}
	if c := result.Existing; c != nil {
		view.Existing = commitmentView(c)
	}
	return view, nil
}
