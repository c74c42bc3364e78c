package memorystore

import (
	"context"
	"testing"

	"yotracker/internal/funds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -v --run TestAppendAndLoad
func TestAppendAndLoad(t *testing.T) {
	store := NewFundStore()
	ctx := context.Background()

	require.NoError(t, store.AppendFunds(ctx, []funds.FundSnapshot{
		{Coin: "usd", Amount: 5, Price: 1, CapturedAt: 200},
		{Coin: "btc", Amount: 1, Price: 30000, CapturedAt: 200},
	}))
	require.NoError(t, store.AppendFunds(ctx, []funds.FundSnapshot{
		{Coin: "eth", Amount: 2, Price: 2000, CapturedAt: 100},
	}))

	rows, err := store.LoadFunds(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "eth", rows[0].Coin)
	assert.Equal(t, "btc", rows[1].Coin)
	assert.Equal(t, "usd", rows[2].Coin)
	assert.Equal(t, 2, store.CountRuns())
}

// go test -v --run TestAppendRejectsWholeBatch
func TestAppendRejectsWholeBatch(t *testing.T) {
	store := NewFundStore()
	ctx := context.Background()

	err := store.AppendFunds(ctx, []funds.FundSnapshot{
		{Coin: "btc", Amount: 1, Price: 30000, CapturedAt: 100},
		{Coin: "eth", Amount: -1, Price: 2000, CapturedAt: 100},
	})
	require.ErrorIs(t, err, funds.ErrInvalidSnapshot)

	rows, err := store.LoadFunds(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// go test -v --run TestLoadReturnsCopy
func TestLoadReturnsCopy(t *testing.T) {
	store := NewFundStore()
	ctx := context.Background()
	require.NoError(t, store.AppendFunds(ctx, []funds.FundSnapshot{{Coin: "btc", Amount: 1, Price: 1, CapturedAt: 1}}))

	rows, _ := store.LoadFunds(ctx)
	rows[0].Amount = 99

	again, _ := store.LoadFunds(ctx)
	assert.Equal(t, 1.0, again[0].Amount)
}
