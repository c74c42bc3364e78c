// Package report turns the funds history into the dashboard's derived views.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"yotracker/internal/funds"

	"github.com/shopspring/decimal"
)

// Holding is a stored row with its value in the reference currency.
type Holding struct {
	funds.FundSnapshot
	TotalValue decimal.Decimal // Amount × Price rounded to 2 decimals
}

// History is the whole funds table ordered by CapturedAt then Coin.
type History []Holding

// LoadHistory reads every stored row and values it.
func LoadHistory(ctx context.Context, store funds.Store) (History, error) {
	rows, err := store.LoadFunds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load funds: %w", err)
	}
	return NewHistory(rows)
}

func NewHistory(rows []funds.FundSnapshot) (History, error) {
	h := make(History, 0, len(rows))
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
		h = append(h, Holding{FundSnapshot: row, TotalValue: totalValue(row)})
	}
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].CapturedAt != h[j].CapturedAt {
			return h[i].CapturedAt < h[j].CapturedAt
		}
		return h[i].Coin < h[j].Coin
	})
	return h, nil
}

func totalValue(row funds.FundSnapshot) decimal.Decimal {
	return decimal.NewFromFloat(row.Amount).Mul(decimal.NewFromFloat(row.Price)).Round(2)
}

// Latest returns the rows of the newest run.
func (h History) Latest() History {
	if len(h) == 0 {
		return nil
	}
	last := h[len(h)-1].CapturedAt
	i := len(h)
	for i > 0 && h[i-1].CapturedAt == last {
		i--
	}
	return h[i:]
}

// CapturedTime converts a run id to a calendar time.
func CapturedTime(capturedAt int64) time.Time {
	return time.Unix(capturedAt, 0).UTC()
}
