// Command housekeeping deactivates ended events and purges old audit records.
// By default it runs as a long-lived scheduler using the configured cron
// schedules; with -once it runs every job a single time and exits, for use
// from an external cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres"
	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/animal-rescue-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/animal-rescue-backend/internal/app"
	"github.com/heartmarshall/animal-rescue-backend/internal/config"
	"github.com/heartmarshall/animal-rescue-backend/internal/housekeeping"
)

func main() {
	once := flag.Bool("once", false, "run every job once and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, *once); err != nil {
		logger.Error("housekeeping failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, once bool) error {
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(connectCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	jobs := housekeeping.NewJobs(logger, event.New(pool), audit.New(pool), cfg.Housekeeping)

	if once {
		return jobs.RunOnce(ctx)
	}

	scheduler, err := housekeeping.NewScheduler(ctx, logger, jobs, cfg.Housekeeping)
	if err != nil {
		return err
	}
	return scheduler.Run(ctx)
}
