package readstore

import (
	"context"

	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/infra"
	"sauna-reservation/internal/infra/repository/converter"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/pkg/pgconv"
	"sauna-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaunaReadQueries interface {
	GetSaunaByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Saunas, error)
	ListAutoClubSaunas(ctx context.Context, db sqlc.DBTX) ([]sqlc.Saunas, error)
}

type SaunaReadStore struct {
	queries SaunaReadQueries
	db      sqlc.DBTX
}

func NewSaunaReadStore(queries SaunaReadQueries, db sqlc.DBTX) *SaunaReadStore {
	return &SaunaReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SaunaReadStore) FindByID(ctx context.Context, id uuid.UUID) (*sauna.Sauna, error) {
	row, err := r.queries.GetSaunaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sauna not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sauna by id", err)
	}
	return converter.SaunaFromInfra(row), nil
}

func (r *SaunaReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.SaunaView, error) {
	row, err := r.queries.GetSaunaByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sauna not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sauna by id", err)
	}
	return &queries.SaunaView{
		ID:               row.ID,
		IslandID:         row.IslandID,
		Name:             row.Name,
		HeatingTimeHours: int(row.HeatingTimeHours),
		AutoClubSauna:    row.AutoClubSauna,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *SaunaReadStore) ListAutoClubSaunas(ctx context.Context) ([]*sauna.Sauna, error) {
	rows, err := r.queries.ListAutoClubSaunas(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auto club saunas", err)
	}
	out := make([]*sauna.Sauna, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SaunaFromInfra(row))
	}
	return out, nil
}
