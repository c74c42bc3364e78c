package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"yotracker/config"
	"yotracker/logger"
	"yotracker/pkg/storage/postgres"

	"go.uber.org/zap"
)

var configDir = flag.String("config", "", "Directory holding config.yaml (default: next to the binary)")

// setup loads the configuration and builds the logger shared by every job.
func setup() (*config.Config, *zap.Logger, error) {
	dir := *configDir
	if dir == "" {
		dir = config.DefaultDir()
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, log, nil
}

// openStore connects to the funds table. Only the collector may create the database.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger, createDB bool) (*postgres.FundsTable, error) {
	table, err := postgres.Initialize(cfg.Postgres, cfg.Log.Environment, cfg.Tracker.ReferenceCurrency, createDB)
	if err != nil {
		return nil, err
	}
	if !table.Client().IsHealthy(ctx) {
		_ = table.Client().Close()
		return nil, fmt.Errorf("postgres database %q is not reachable", cfg.Postgres.DBName)
	}
	log.Info("postgres ready",
		zap.String("database", cfg.Postgres.DBName),
		zap.String("reference", cfg.Tracker.ReferenceCurrency),
	)
	return table, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
