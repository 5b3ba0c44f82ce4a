package jobs

import (
	"context"
	"log/slog"

	"sauna-reservation/internal/pkg/config"
	"sauna-reservation/internal/usecase/commands"
)

// ClubSaunaScheduler keeps the club sauna sessions of the coming days in place.
type ClubSaunaScheduler struct {
	cmds  commands.ClubSaunaCommands
	sched commands.ClubSaunaSchedule
	*runner
}

func NewClubSaunaScheduler(cmds commands.ClubSaunaCommands, cfg config.JobsConfig) *ClubSaunaScheduler {
	s := &ClubSaunaScheduler{
		cmds: cmds,
		sched: commands.ClubSaunaSchedule{
			DaysAhead:     cfg.ClubSaunaDaysAhead,
			StartHour:     cfg.ClubSaunaStartHour,
			DurationHours: cfg.ClubSaunaDurationHours,
		},
	}
	s.runner = newRunner("club_sauna_scheduler", cfg.ClubSaunaInterval, s.RunOnce)
	return s
}

func (s *ClubSaunaScheduler) RunOnce(ctx context.Context) error {
	created, err := s.cmds.ScheduleUpcoming(ctx, s.sched)
	if err != nil {
		return err
	}
	if created > 0 {
		slog.Info("Club sauna sessions scheduled", "created", created, "days_ahead", s.sched.DaysAhead)
	}
	return nil
}
