package queries

import (
	"time"

	"sauna-reservation/internal/domain/clubsauna"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/errs"
)

type ClubSaunaQueries interface {
	Eligibility(date string) (*ClubSaunaEligibilityView, error)
}

type clubSaunaQueriesImpl struct {
	loc *time.Location
}

func NewClubSaunaQueries(loc *time.Location) ClubSaunaQueries {
	return &clubSaunaQueriesImpl{loc: loc}
}

func (q *clubSaunaQueriesImpl) Eligibility(date string) (*ClubSaunaEligibilityView, error) {
	day, err := clock.ParseDate(date, q.loc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	e := clubsauna.IsEligibleDate(day)
	view := &ClubSaunaEligibilityView{
		Date:     day.Format(time.DateOnly),
		Eligible: e.Eligible,
	}
	if e.Eligible {
		view.Season = string(e.Season)
	}
	return view, nil
}
