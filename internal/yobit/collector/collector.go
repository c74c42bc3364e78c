package collector

import (
	"context"
	"fmt"
	"time"

	"yotracker/config"
	"yotracker/internal/funds"
	"yotracker/internal/yobit/snapshot"
	"yotracker/pkg/yobit"

	"go.uber.org/zap"
)

// Collector appends one valued snapshot of the account per run.
type Collector struct {
	capturer *snapshot.Capturer
	store    funds.Store
	logger   *zap.Logger
	now      func() time.Time
}

// New wires the Yobit public and trade clients from cfg.
func New(cfg *config.Config, creds config.Credentials, store funds.Store, logger *zap.Logger) *Collector {
	rest := yobit.NewRESTClient(
		cfg.Yobit.REST.BaseURL,
		cfg.Yobit.REST.Timeout,
		cfg.Yobit.REST.BatchSize,
		cfg.Yobit.REST.BatchDelay,
	)
	trade := yobit.NewTradeClient(
		cfg.Yobit.Trade.BaseURL,
		cfg.Yobit.Trade.Timeout,
		yobit.NewSigner(creds.Key, creds.Secret),
	)

	return NewWithCapturer(&snapshot.Capturer{
		Account:   trade,
		Tickers:   rest,
		Reference: cfg.Tracker.ReferenceCurrency,
	}, store, logger, time.Now)
}

func NewWithCapturer(capturer *snapshot.Capturer, store funds.Store, logger *zap.Logger, now func() time.Time) *Collector {
	return &Collector{
		capturer: capturer,
		store:    store,
		logger:   logger.With(zap.String("component", "collector")),
		now:      now,
	}
}

// Run captures the account and appends the rows as one batch. Nothing is
// written when any step fails.
func (c *Collector) Run(ctx context.Context) ([]funds.FundSnapshot, error) {
	capturedAt := c.now().UTC().Unix()
	logger := c.logger.With(zap.Int64("captured_at", capturedAt))

	rows, err := c.capturer.Capture(ctx, capturedAt)
	if err != nil {
		logger.Error("capture failed", zap.Bool("transient", yobit.IsTransient(err)), zap.Error(err))
		return nil, fmt.Errorf("capture: %w", err)
	}

	if len(rows) == 0 {
		logger.Warn("account holds no coins, nothing to store")
		return rows, nil
	}

	if err := c.store.AppendFunds(ctx, rows); err != nil {
		logger.Error("failed to store snapshot", zap.Error(err))
		return nil, fmt.Errorf("store: %w", err)
	}

	var total float64
	for _, r := range rows {
		total += r.Amount * r.Price
	}
	logger.Info("snapshot stored",
		zap.Int("coins", len(rows)),
		zap.Float64("total", total),
		zap.String("reference", c.capturer.Reference),
	)
	return rows, nil
}
