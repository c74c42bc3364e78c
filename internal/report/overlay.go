package report

import (
	"sort"
	"strings"
	"time"

	"yotracker/internal/funds"

	"github.com/shopspring/decimal"
)

// OverlayPoint holds the running deposit and withdrawal sums after an event.
type OverlayPoint struct {
	Time        time.Time
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}

// BalanceOverlay keeps reference-currency events, orders them by date and
// accumulates deposits and withdrawals. A zero-delta point at end closes the
// series so it spans the portfolio chart; end is skipped when zero.
// It returns nil when no event is in the reference currency.
func BalanceOverlay(events []funds.BalanceEvent, reference string, end time.Time) []OverlayPoint {
	var kept []funds.BalanceEvent
	for _, ev := range events {
		if strings.EqualFold(ev.Currency, reference) {
			kept = append(kept, ev)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })

	out := make([]OverlayPoint, 0, len(kept)+1)
	var in, outSum decimal.Decimal
	for _, ev := range kept {
		amount := decimal.NewFromFloat(ev.Amount)
		if ev.Withdrawal {
			outSum = outSum.Add(amount)
		} else {
			in = in.Add(amount)
		}
		out = append(out, OverlayPoint{Time: ev.Date, Deposits: in, Withdrawals: outSum})
	}

	if !end.IsZero() {
		out = append(out, OverlayPoint{Time: end, Deposits: in, Withdrawals: outSum})
	}
	return out
}
