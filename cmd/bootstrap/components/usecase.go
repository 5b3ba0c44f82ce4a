package components

import (
	"sauna-reservation/internal/domain/sauna"
	"sauna-reservation/internal/pkg/clock"
	"sauna-reservation/internal/pkg/config"
	"sauna-reservation/internal/usecase/commands"
	"sauna-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) sauna.Calculator {
		return sauna.Calculator{MaxLookahead: cfg.Schedule.MaxLookahead}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewSharedReservationUseCase,
		commands.NewClubSaunaUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewSharedReservationQueries,
		queries.NewClubSaunaQueries,
	),
)
