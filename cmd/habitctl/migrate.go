package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres"
)

type migrateCmd struct {
	Down    bool          `help:"Roll back the most recent migration instead of applying pending ones."`
	Timeout time.Duration `help:"Abort if migrations take longer than this." default:"2m"`
}

func (c *migrateCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	results, err := postgres.Migrate(ctx, rc.cfg.Database.DSN, c.Down)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if len(results) == 0 {
		rc.logger.Info("no migrations to run", slog.Bool("down", c.Down))
		return nil
	}
	for _, r := range results {
		rc.logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
