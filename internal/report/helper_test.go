package report

import (
	"testing"

	"yotracker/internal/funds"

	"github.com/stretchr/testify/require"
)

// row builds a FundSnapshot in argument order (coin, amount, price, capturedAt).
func row(coin string, amount, price float64, capturedAt int64) funds.FundSnapshot {
	return funds.FundSnapshot{Coin: coin, Amount: amount, Price: price, CapturedAt: capturedAt}
}

func mustHistory(t *testing.T, rows ...funds.FundSnapshot) History {
	t.Helper()
	h, err := NewHistory(rows)
	require.NoError(t, err)
	return h
}
