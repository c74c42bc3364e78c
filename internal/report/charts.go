package report

import (
	"time"

	"yotracker/internal/chart"

	"github.com/shopspring/decimal"
)

// Chart artifact names.
const (
	ChartPortfolio     = "portfolio"
	ChartTopCoins      = "top_coin_usd"
	ChartTopExchange   = "top_exchange"
	ChartGrowthLeaders = "growth_leaders"
)

const (
	depositColor    = "rgba(255, 80, 80, 0.7)"
	withdrawalColor = "rgba(111,231,219, 0.5)"
	gainColor       = "rgba(64, 220, 128, 0.7)"
	lossColor       = "rgba(255, 80, 80, 0.7)"
	percentFormat   = ",.0%"
)

// PortfolioChart draws the portfolio value and, when overlay is not empty,
// the cumulative deposits and withdrawals clipped to the portfolio's range.
func PortfolioChart(points []PortfolioPoint, overlay []OverlayPoint, currency string) chart.Figure {
	times := make([]time.Time, len(points))
	totals := make([]float64, len(points))
	var last decimal.Decimal
	for i, p := range points {
		times[i] = p.Time
		totals[i] = p.Total.InexactFloat64()
		last = p.Total
	}

	fig := chart.Figure{Layout: chart.DarkLayout()}
	fig.Layout.Legend = &chart.Legend{Orientation: "h", YAnchor: "bottom", Y: 1.02}
	fig.Data = append(fig.Data, chart.Trace{
		Type: "scatter",
		Name: "Portfolio: " + chart.FormatMoney(last, currency),
		X:    chart.Times(times),
		Y:    chart.Floats(totals),
		Mode: "lines",
	})

	if len(overlay) == 0 {
		return fig
	}

	dates := make([]time.Time, len(overlay))
	in := make([]float64, len(overlay))
	out := make([]float64, len(overlay))
	for i, p := range overlay {
		dates[i] = p.Time
		in[i] = p.Deposits.InexactFloat64()
		out[i] = p.Withdrawals.InexactFloat64()
	}
	final := overlay[len(overlay)-1]

	fig.Data = append(fig.Data,
		balanceTrace("Deposit: "+chart.FormatMoney(final.Deposits, currency), dates, in, depositColor),
		balanceTrace("Withdrawal: "+chart.FormatMoney(final.Withdrawals, currency), dates, out, withdrawalColor),
	)
	if len(times) > 0 {
		fig.Layout.XAxis = &chart.Axis{Range: chart.Times([]time.Time{times[0], times[len(times)-1]})}
	}
	return fig
}

func balanceTrace(name string, dates []time.Time, values []float64, color string) chart.Trace {
	return chart.Trace{
		Type:      "scatter",
		Name:      name,
		X:         chart.Times(dates),
		Y:         chart.Floats(values),
		Mode:      "none",
		Fill:      "tozeroy",
		FillColor: color,
		Opacity:   0.5,
		Line:      &chart.Line{Shape: "hv"},
	}
}

// TopCoinsChart draws the holdings as horizontal bars labelled with their value.
func TopCoinsChart(entries []TopEntry) chart.Figure {
	labels := make([]string, len(entries))
	values := make([]float64, len(entries))
	text := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
		values[i] = e.Value.InexactFloat64()
		text[i] = e.Value.StringFixed(2)
	}

	return chart.Figure{
		Data: []chart.Trace{{
			Type:         "bar",
			X:            chart.Floats(values),
			Y:            chart.Strings(labels),
			Orientation:  "h",
			Text:         text,
			TextPosition: "auto",
		}},
		Layout: chart.DarkLayout(),
	}
}

// TopExchangeChart draws one relative price line per coin.
func TopExchangeChart(series []Series) chart.Figure {
	fig := chart.Figure{Data: []chart.Trace{}, Layout: chart.DarkLayout()}
	fig.Layout.XAxis = &chart.Axis{Title: chart.NoTitle()}
	fig.Layout.YAxis = &chart.Axis{TickFormat: percentFormat, Title: chart.NoTitle()}

	for _, s := range series {
		times := make([]time.Time, len(s.Points))
		values := make([]float64, len(s.Points))
		for i, p := range s.Points {
			times[i] = p.Time
			values[i] = p.Value
		}
		fig.Data = append(fig.Data, chart.Trace{
			Type: "scatter",
			Name: s.Coin,
			X:    chart.Times(times),
			Y:    chart.Floats(values),
			Mode: "lines",
		})
	}
	return fig
}

// GrowthLeadersChart draws gains in green and losses in red.
func GrowthLeadersChart(leaders []Leader) chart.Figure {
	labels := make([]string, len(leaders))
	changes := make([]float64, len(leaders))
	colors := make([]string, len(leaders))
	for i, l := range leaders {
		labels[i] = l.Coin
		changes[i] = l.Change
		colors[i] = lossColor
		if l.Change > 0 {
			colors[i] = gainColor
		}
	}

	fig := chart.Figure{
		Data: []chart.Trace{{
			Type:         "bar",
			X:            chart.Floats(changes),
			Y:            chart.Strings(labels),
			Orientation:  "h",
			TextPosition: "auto",
			Marker:       &chart.Marker{Color: colors},
		}},
		Layout: chart.DarkLayout(),
	}
	fig.Layout.XAxis = &chart.Axis{TickFormat: percentFormat}
	return fig
}
