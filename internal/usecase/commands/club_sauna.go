package commands

import (
	"context"
	"log/slog"
	"time"

	"sauna-reservation/internal/domain/clubsauna"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
	"sauna-reservation/internal/usecase/shared"
)

type ClubSaunaSchedule struct {
	DaysAhead     int
	StartHour     int
	DurationHours int
}

type ClubSaunaCommands interface {
	// ScheduleUpcoming returns how many sessions were created.
	ScheduleUpcoming(ctx context.Context, sched ClubSaunaSchedule) (int, error)
}

type clubSaunaUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewClubSaunaUseCase(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ClubSaunaCommands {
	return &clubSaunaUseCaseImpl{
		uow:   uow,
		clock: clk,
		loc:   loc,
	}
}

// ScheduleUpcoming creates the club sauna session of every eligible day in the
// window for each sauna with auto club sauna enabled. Existing sessions at the
// same start are left alone, and a sauna already booked at that time is skipped.
func (uc *clubSaunaUseCaseImpl) ScheduleUpcoming(ctx context.Context, sched ClubSaunaSchedule) (int, error) {
	saunas, err := uc.uow.CommandReads().AutoClubSaunas(ctx)
	if err != nil {
		return 0, err
	}
	if len(saunas) == 0 {
		return 0, nil
	}

	now := uc.clock.Now()
	today, _ := clock.DayBounds(now, uc.loc)
	created := 0

	for d := 0; d < sched.DaysAhead; d++ {
		day := today.AddDate(0, 0, d)
		eligibility := clubsauna.IsEligibleDate(day)
		if !eligibility.Eligible {
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), sched.StartHour, 0, 0, 0, uc.loc)
		if !start.After(now) {
			continue
		}
		end := start.Add(time.Duration(sched.DurationHours) * time.Hour)

		for _, s := range saunas {
			made := false
			err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				exists, err := tx.Reads().SharedReservationExistsAt(ctx, s.ID(), start)
				if err != nil || exists {
					return err
				}
				if _, err = createSession(ctx, tx, now, s.ID(), eligibility.SessionName(), start, end); err != nil {
					return err
				}
				made = true
				return nil
			})
			switch {
			case err == nil:
				if made {
					created++
				}
			case errs.Is(err, errs.ErrReservationConflict):
				slog.Info("club sauna slot already taken",
					"sauna_id", s.ID().String(),
					"start", start.Format(time.RFC3339))
			default:
				return created, err
			}
		}
	}

	return created, nil
}
