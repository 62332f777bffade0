// Package housekeeping runs the periodic maintenance jobs: deactivating
// events that have ended and purging old audit records. The jobs run in
// their own process (cmd/housekeeping), never inside the API server.
package housekeeping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/animal-rescue-backend/internal/config"
)

//go:generate moq -out mocks_test.go -pkg housekeeping -rm . eventRepo auditRepo

type eventRepo interface {
	DeactivateEnded(ctx context.Context, cutoff, now time.Time) (int64, error)
}

type auditRepo interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Jobs holds the maintenance operations.
type Jobs struct {
	log    *slog.Logger
	events eventRepo
	audit  auditRepo
	cfg    config.HousekeepingConfig
	now    func() time.Time
}

// NewJobs creates Jobs.
func NewJobs(logger *slog.Logger, events eventRepo, audit auditRepo, cfg config.HousekeepingConfig) *Jobs {
	return &Jobs{
		log:    logger.With("component", "housekeeping"),
		events: events,
		audit:  audit,
		cfg:    cfg,
		now:    time.Now,
	}
}

// ExpireEvents deactivates events that ended more than the grace period ago.
func (j *Jobs) ExpireEvents(ctx context.Context) (int64, error) {
	now := j.now().UTC()
	cutoff := now.Add(-j.cfg.EventGracePeriod)

	n, err := j.events.DeactivateEnded(ctx, cutoff, now)
	if err != nil {
		return 0, fmt.Errorf("housekeeping.ExpireEvents: %w", err)
	}
	j.log.InfoContext(ctx, "expired events deactivated",
		slog.Int64("deactivated", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

// PurgeAudit deletes audit records older than the retention period.
func (j *Jobs) PurgeAudit(ctx context.Context) (int64, error) {
	cutoff := j.now().UTC().Add(-j.cfg.AuditRetention)

	n, err := j.audit.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("housekeeping.PurgeAudit: %w", err)
	}
	j.log.InfoContext(ctx, "audit records purged",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

// RunOnce runs every job concurrently and returns the first failure. A
// failing job does not cancel the others.
func (j *Jobs) RunOnce(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := j.ExpireEvents(ctx)
		return err
	})
	g.Go(func() error {
		_, err := j.PurgeAudit(ctx)
		return err
	})
	return g.Wait()
}
