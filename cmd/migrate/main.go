// Command migrate applies or inspects the embedded goose migrations. The API
// server never migrates on startup; deployments run this first.
//
// Usage:
//
//	migrate [up|up-by-one|down|down-to VERSION|status|version]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/animal-rescue-backend/internal/app"
	"github.com/heartmarshall/animal-rescue-backend/internal/config"
	"github.com/heartmarshall/animal-rescue-backend/migrations"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate [flags] up|up-by-one|down|down-to VERSION|status|version")
		flag.PrintDefaults()
	}
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, cfg.Database.DSN, cmd, flag.Args()[min(1, flag.NArg()):]); err != nil {
		logger.Error("migrate failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dsn, cmd string, args []string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch cmd {
	case "up":
		results, err := provider.Up(ctx)
		logResults(logger, results)
		return err
	case "up-by-one":
		res, err := provider.UpByOne(ctx)
		logResults(logger, []*goose.MigrationResult{res})
		return err
	case "down":
		res, err := provider.Down(ctx)
		logResults(logger, []*goose.MigrationResult{res})
		return err
	case "down-to":
		if len(args) != 1 {
			return fmt.Errorf("down-to requires a target version")
		}
		version, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse version %q: %w", args[0], err)
		}
		results, err := provider.DownTo(ctx, version)
		logResults(logger, results)
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			attrs := []any{
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
			}
			logger.Info("migration", attrs...)
		}
		return nil
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		logger.Info("database version", slog.Int64("version", v))
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func logResults(logger *slog.Logger, results []*goose.MigrationResult) {
	if len(results) == 0 {
		logger.Info("no migrations to apply")
		return
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		logger.Info("migration applied",
			slog.String("direction", r.Direction),
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
}
