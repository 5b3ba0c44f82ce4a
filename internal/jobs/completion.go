package jobs

import (
	"context"
	"log/slog"

	"sauna-reservation/internal/pkg/config"
	"sauna-reservation/internal/usecase/commands"
)

// CompletionSweeper moves finished reservations from active to completed.
type CompletionSweeper struct {
	cmds commands.ReservationCommands
	*runner
}

func NewCompletionSweeper(cmds commands.ReservationCommands, cfg config.JobsConfig) *CompletionSweeper {
	s := &CompletionSweeper{cmds: cmds}
	s.runner = newRunner("completion_sweeper", cfg.CompletionSweepInterval, s.RunOnce)
	return s
}

func (s *CompletionSweeper) RunOnce(ctx context.Context) error {
	n, err := s.cmds.CompleteEnded(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("Reservations completed", "count", n)
	}
	return nil
}
