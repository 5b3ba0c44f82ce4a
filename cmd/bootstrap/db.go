package bootstrap

import (
	"context"
	"log/slog"

	"sauna-reservation/internal/infra/db"
	"sauna-reservation/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB fails startup when the database is unreachable; the pool closes on shutdown
// after the jobs have stopped.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			logger.Info("Database pool closed")
			return nil
		},
	})

	return pool, nil
}
