package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioPoint is the portfolio value of one run.
type PortfolioPoint struct {
	Time  time.Time
	Total decimal.Decimal
}

// PortfolioTotals sums TotalValue per run, oldest first.
func PortfolioTotals(h History) []PortfolioPoint {
	var out []PortfolioPoint
	for i, row := range h {
		if i == 0 || row.CapturedAt != h[i-1].CapturedAt {
			out = append(out, PortfolioPoint{Time: CapturedTime(row.CapturedAt)})
		}
		last := &out[len(out)-1]
		last.Total = last.Total.Add(row.TotalValue)
	}
	return out
}
