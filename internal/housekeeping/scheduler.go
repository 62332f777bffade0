package housekeeping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/animal-rescue-backend/internal/config"
)

const jobTimeout = 5 * time.Minute

// Scheduler runs Jobs on their configured cron schedules.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// NewScheduler registers every job. Schedules use the six-field format with
// seconds and are evaluated in UTC. A run that is still in progress when
// its next tick fires causes that tick to be skipped.
func NewScheduler(ctx context.Context, logger *slog.Logger, jobs *Jobs, cfg config.HousekeepingConfig) (*Scheduler, error) {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithParser(config.CronParser()),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	s := &Scheduler{cron: c, log: log}
	entries := []struct {
		name string
		spec string
		run  func(context.Context) (int64, error)
	}{
		{"expire_events", cfg.ExpireEventsSchedule, jobs.ExpireEvents},
		{"purge_audit", cfg.PurgeAuditSchedule, jobs.PurgeAudit},
	}
	for _, e := range entries {
		if _, err := c.AddFunc(e.spec, s.job(ctx, e.name, e.run)); err != nil {
			return nil, fmt.Errorf("register %s job: %w", e.name, err)
		}
	}
	return s, nil
}

func (s *Scheduler) job(ctx context.Context, name string, run func(context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(ctx, jobTimeout)
		defer cancel()

		start := time.Now()
		if _, err := run(ctx); err != nil {
			s.log.ErrorContext(ctx, "job failed",
				slog.String("job", name),
				slog.String("error", err.Error()),
			)
			return
		}
		s.log.DebugContext(ctx, "job finished",
			slog.String("job", name),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// Run starts the scheduler and blocks until ctx is cancelled, then waits
// for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.InfoContext(ctx, "scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
