package bootstrap

import (
	"time"

	"sauna-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewScheduleLocation,
	),
)

// NewScheduleLocation is the location calendar days are counted in.
func NewScheduleLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Schedule.Location()
}
