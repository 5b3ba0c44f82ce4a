package jobs

import (
	"context"
	"log/slog"

	"sauna-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var Module = fx.Module("jobs",
	fx.Provide(
		func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
		NewClubSaunaScheduler,
		NewCompletionSweeper,
	),
	fx.Invoke(Register),
)

type job interface {
	Start()
	Stop()
}

// Register ties the jobs to the application lifecycle; JOBS_ENABLED=false leaves them idle.
func Register(lc fx.Lifecycle, cfg config.JobsConfig, scheduler *ClubSaunaScheduler, sweeper *CompletionSweeper) {
	if !cfg.Enabled {
		slog.Info("Background jobs disabled")
		return
	}

	for _, j := range []job{scheduler, sweeper} {
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				j.Start()
				return nil
			},
			OnStop: func(_ context.Context) error {
				j.Stop()
				return nil
			},
		})
	}
}
