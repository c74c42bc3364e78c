package report

import (
	"testing"
	"time"

	"yotracker/internal/funds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// go test -v --run TestBalanceOverlay
func TestBalanceOverlay(t *testing.T) {
	events := []funds.BalanceEvent{
		{Date: at(2), Currency: "usd", Amount: 30, Withdrawal: true},
		{Date: at(1), Currency: "usd", Amount: 100},
		{Date: at(3), Currency: "btc", Amount: 1},
	}

	points := BalanceOverlay(events, "usd", at(10))
	require.Len(t, points, 3)

	var times []int64
	var in, out []string
	for _, p := range points {
		times = append(times, p.Time.Unix())
		in = append(in, p.Deposits.String())
		out = append(out, p.Withdrawals.String())
	}
	assert.Equal(t, []int64{1, 2, 10}, times)
	assert.Equal(t, []string{"100", "100", "100"}, in)
	assert.Equal(t, []string{"0", "30", "30"}, out)
}

// go test -v --run TestBalanceOverlayWithoutReferenceEvents
func TestBalanceOverlayWithoutReferenceEvents(t *testing.T) {
	events := []funds.BalanceEvent{{Date: at(1), Currency: "eur", Amount: 5}}
	assert.Nil(t, BalanceOverlay(events, "usd", at(10)))
	assert.Nil(t, BalanceOverlay(nil, "usd", at(10)))
}

// go test -v --run TestBalanceOverlayNoPortfolio
func TestBalanceOverlayNoPortfolio(t *testing.T) {
	events := []funds.BalanceEvent{{Date: at(1), Currency: "USD", Amount: 5}}
	points := BalanceOverlay(events, "usd", time.Time{})
	require.Len(t, points, 1)
	assert.Equal(t, "5", points[0].Deposits.String())
}
