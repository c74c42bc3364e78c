package main

import (
	"context"
	"flag"
	"time"

	"yotracker/config"
	"yotracker/internal/yobit/collector"
	"yotracker/internal/yobit/scheduler"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// useConfigInterval marks -interval as unset.
const useConfigInterval time.Duration = -1

type collectCmd struct {
	interval time.Duration
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "snapshot the Yobit account into the funds table" }
func (*collectCmd) Usage() string {
	return `collect [-interval <duration>]

  Reads the account balances, values every coin in the reference currency and
  appends the result to the funds table as one run.
  - interval: keep running, collecting again on every interval boundary
    (e.g. 1h). 0 runs once. Without the flag tracker.interval is used.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", useConfigInterval, "Collect on every interval boundary; 0 runs once (default: tracker.interval)")
}

func (c *collectCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	creds, err := config.LoadCredentials(cfg.Yobit.Trade.KeyFile)
	if err != nil {
		log.Error("failed to load credentials", zap.String("path", cfg.Yobit.Trade.KeyFile), zap.Error(err))
		return subcommands.ExitFailure
	}

	store, err := openStore(ctx, cfg, log, true)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		return subcommands.ExitFailure
	}
	defer store.Client().Close()

	col := collector.New(cfg, creds, store, log)
	job := func(ctx context.Context) error {
		_, err := col.Run(ctx)
		return err
	}

	interval := resolveInterval(c.interval, cfg.Tracker.Interval)
	if interval <= 0 {
		err = job(ctx)
	} else {
		log.Info("collecting on schedule", zap.Duration("interval", interval))
		err = scheduler.New(interval, log).Run(ctx, job)
	}
	if err != nil {
		log.Error("collect failed", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolveInterval prefers the flag over the configured interval.
func resolveInterval(flagValue, configured time.Duration) time.Duration {
	if flagValue == useConfigInterval {
		return configured
	}
	return flagValue
}
