package main

import (
	"context"
	"flag"
	"fmt"

	"yotracker/internal/report"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type reportCmd struct {
	summary bool
	topN    int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the dashboard charts from the funds table" }
func (*reportCmd) Usage() string {
	return `report [-summary] [-top <n>]

  Reads the whole funds table and writes portfolio, top_coin_usd,
  top_exchange and growth_leaders charts to tracker.chart_dir.
  - summary: also print the newest snapshot in the terminal.
  - top: number of coins in the holdings chart before the rest is grouped.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "Print a summary of the newest snapshot")
	f.IntVar(&c.topN, "top", report.DefaultTopN, "Coins shown before the rest is grouped")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := setup()
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	defer log.Sync()

	store, err := openStore(ctx, cfg, log, false)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		return subcommands.ExitFailure
	}
	defer store.Client().Close()

	r := &report.Reporter{
		Store:      store,
		Reference:  cfg.Tracker.ReferenceCurrency,
		LedgerPath: cfg.Tracker.BalanceFile,
		OutDir:     cfg.Tracker.ChartDir,
		TopN:       c.topN,
		Logger:     log,
	}
	res, err := r.Run(ctx)
	if err != nil {
		log.Error("report failed", zap.Error(err))
		return subcommands.ExitFailure
	}

	if c.summary {
		out, err := glamour.Render(report.Summary(res, cfg.Tracker.ReferenceCurrency), "dark")
		if err != nil {
			log.Error("failed to render summary", zap.Error(err))
			return subcommands.ExitFailure
		}
		fmt.Print(out)
	}
	return subcommands.ExitSuccess
}
