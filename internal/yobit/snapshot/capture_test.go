package snapshot

import (
	"context"
	"errors"
	"testing"

	"yotracker/pkg/yobit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccount struct {
	funds map[string]float64
	err   error
	nonce int64
}

func (f *fakeAccount) GetFunds(_ context.Context, nonce int64) (map[string]float64, error) {
	f.nonce = nonce
	return f.funds, f.err
}

type fakeTickers struct {
	tickers map[string]yobit.Ticker
	err     error
	asked   []string
}

func (f *fakeTickers) GetTickers(_ context.Context, pairs []string) (map[string]yobit.Ticker, error) {
	f.asked = append(f.asked, pairs...)
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]yobit.Ticker{}
	for _, p := range pairs {
		if t, ok := f.tickers[p]; ok {
			out[p] = t
		}
	}
	return out, nil
}

// go test -v --run TestCaptureValuesEveryCoin
func TestCaptureValuesEveryCoin(t *testing.T) {
	account := &fakeAccount{funds: map[string]float64{"usd": 0, "btc": 0.5, "doge": 1000}}
	tickers := &fakeTickers{tickers: map[string]yobit.Ticker{
		"btc_usd":  {Buy: 30000, Sell: 30010},
		"doge_usd": {Buy: 0.07, Sell: 0.071},
		"eth_usd":  {Buy: 2000},
	}}
	c := &Capturer{Account: account, Tickers: tickers, Reference: "usd"}

	rows, err := c.Capture(context.Background(), 1700000000)
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000), account.nonce)
	assert.Equal(t, []string{"btc_usd", "doge_usd"}, tickers.asked)

	require.Len(t, rows, 3)
	coins := map[string]float64{}
	for _, r := range rows {
		assert.Equal(t, int64(1700000000), r.CapturedAt)
		coins[r.Coin] = r.Price
	}
	assert.Equal(t, map[string]float64{"btc": 30000, "doge": 0.07, "usd": 1}, coins)
}

// go test -v --run TestCaptureMissingPrice
func TestCaptureMissingPrice(t *testing.T) {
	account := &fakeAccount{funds: map[string]float64{"usd": 10, "dead": 5}}
	c := &Capturer{Account: account, Tickers: &fakeTickers{}, Reference: "usd"}

	rows, err := c.Capture(context.Background(), 1)
	require.ErrorIs(t, err, ErrMissingPrice)
	assert.Contains(t, err.Error(), "dead_usd")
	assert.Nil(t, rows)
}

// go test -v --run TestCaptureEmptyAccount
func TestCaptureEmptyAccount(t *testing.T) {
	tickers := &fakeTickers{}
	c := &Capturer{Account: &fakeAccount{funds: map[string]float64{}}, Tickers: tickers, Reference: "usd"}

	rows, err := c.Capture(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, tickers.asked)
}

// go test -v --run TestCaptureOnlyReference
func TestCaptureOnlyReference(t *testing.T) {
	tickers := &fakeTickers{err: errors.New("must not be called")}
	c := &Capturer{Account: &fakeAccount{funds: map[string]float64{"usd": 0}}, Tickers: tickers, Reference: "usd"}

	rows, err := c.Capture(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].Price)
	assert.Equal(t, 0.0, rows[0].Amount)
}

// go test -v --run TestCapturePropagatesFailures
func TestCapturePropagatesFailures(t *testing.T) {
	apiErr := &yobit.APIError{Kind: yobit.KindTransient, Op: "ticker"}

	c := &Capturer{
		Account:   &fakeAccount{funds: map[string]float64{"btc": 1}},
		Tickers:   &fakeTickers{err: apiErr},
		Reference: "usd",
	}
	_, err := c.Capture(context.Background(), 1)
	require.ErrorIs(t, err, apiErr)
	assert.True(t, yobit.IsTransient(err))

	c.Account = &fakeAccount{err: &yobit.APIError{Kind: yobit.KindAuth, Op: "getInfo"}}
	_, err = c.Capture(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, yobit.IsTransient(err))
}

// go test -v --run TestRequiredPairs
func TestRequiredPairs(t *testing.T) {
	pairs := RequiredPairs(map[string]float64{"usd": 1, "ltc": 2, "btc": 3}, "usd")
	assert.Equal(t, []string{"btc_usd", "ltc_usd"}, pairs)
	assert.Nil(t, RequiredPairs(map[string]float64{"usd": 1}, "usd"))
}
