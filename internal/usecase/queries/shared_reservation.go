package queries

import (
	"context"

	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type SharedReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SharedReservationView, error)
}

type sharedReservationQueriesImpl struct {
	repo SharedReservationReadStore
}

func NewSharedReservationQueries(repo SharedReservationReadStore) SharedReservationQueries {
	return &sharedReservationQueriesImpl{repo: repo}
}

func (q *sharedReservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SharedReservationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSharedReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}
