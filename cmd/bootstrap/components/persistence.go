package components

import (
	"sauna-reservation/internal/infra/readstore"
	sqlc "sauna-reservation/internal/infra/sqlc/generated"
	"sauna-reservation/internal/infra/uow"
	"sauna-reservation/internal/usecase/queries"
	"sauna-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Sauna
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SaunaReadQueries)),
		),
		fx.Annotate(
			readstore.NewSaunaReadStore,
			fx.As(new(queries.SaunaReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Shared reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SharedReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewSharedReservationReadStore,
			fx.As(new(queries.SharedReservationReadStore)),
		),
		// Daily limit commitments
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommitmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommitmentReadStore,
			fx.As(new(shared.CommitmentReader)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
