package bootstrap

import (
	"sauna-reservation/cmd/bootstrap/components"
	"sauna-reservation/internal/jobs"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	jobs.Module,
)
