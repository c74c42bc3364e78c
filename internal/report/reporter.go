package report

import (
	"context"
	"fmt"
	"time"

	"yotracker/internal/chart"
	"yotracker/internal/funds"

	"go.uber.org/zap"
)

// Reporter renders the dashboard charts from the funds history.
type Reporter struct {
	Store      funds.Store
	Reference  string
	LedgerPath string // optional balance ledger; empty disables the overlay
	OutDir     string
	TopN       int
	Logger     *zap.Logger
}

// Result holds every derived view of one report run.
type Result struct {
	History  History
	Totals   []PortfolioPoint
	Overlay  []OverlayPoint
	Top      []TopEntry
	Exchange []Series
	Leaders  []Leader
	Files    []string
}

// Run loads the history, derives the views and writes one artifact per chart.
func (r *Reporter) Run(ctx context.Context) (*Result, error) {
	logger := r.Logger.With(zap.String("component", "reporter"))

	history, err := LoadHistory(ctx, r.Store)
	if err != nil {
		return nil, err
	}
	logger.Info("history loaded", zap.Int("rows", len(history)))

	topN := r.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	res := &Result{History: history, Totals: PortfolioTotals(history)}
	res.Overlay = r.overlay(logger, res.Totals)
	res.Top = TopHoldings(history, topN)
	res.Exchange = TopExchange(history, res.Top)
	res.Leaders = GrowthLeaders(history)

	figures := []struct {
		name string
		fig  chart.Figure
	}{
		{ChartPortfolio, PortfolioChart(res.Totals, res.Overlay, r.Reference)},
		{ChartTopCoins, TopCoinsChart(res.Top)},
		{ChartTopExchange, TopExchangeChart(res.Exchange)},
		{ChartGrowthLeaders, GrowthLeadersChart(res.Leaders)},
	}
	for _, f := range figures {
		path, err := chart.Save(r.OutDir, f.name, f.fig)
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", f.name, err)
		}
		res.Files = append(res.Files, path)
		logger.Debug("chart written", zap.String("path", path))
	}

	logger.Info("charts written", zap.Int("count", len(res.Files)), zap.String("dir", r.OutDir))
	return res, nil
}

// overlay loads the optional ledger. Any problem disables the overlay with a warning.
func (r *Reporter) overlay(logger *zap.Logger, totals []PortfolioPoint) []OverlayPoint {
	if r.LedgerPath == "" {
		return nil
	}

	events, err := LoadLedger(r.LedgerPath)
	if err != nil {
		logger.Warn("balance ledger unavailable, rendering without overlay",
			zap.String("path", r.LedgerPath), zap.Error(err))
		return nil
	}

	var end time.Time
	if len(totals) > 0 {
		end = totals[len(totals)-1].Time
	}

	overlay := BalanceOverlay(events, r.Reference, end)
	if overlay == nil {
		logger.Warn("balance ledger has no events in the reference currency",
			zap.String("path", r.LedgerPath), zap.String("reference", r.Reference))
	}
	return overlay
}
