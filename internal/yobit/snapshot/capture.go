package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"yotracker/internal/funds"
	"yotracker/pkg/yobit"
)

// ErrMissingPrice means the ticker had no price for a coin that is held.
var ErrMissingPrice = errors.New("missing price for held coin")

// AccountAPI returns balances including order reserves.
type AccountAPI interface {
	GetFunds(ctx context.Context, nonce int64) (map[string]float64, error)
}

// TickerAPI returns tickers for the requested pairs; unknown pairs may be absent.
type TickerAPI interface {
	GetTickers(ctx context.Context, pairs []string) (map[string]yobit.Ticker, error)
}

// Capturer values the account in the reference currency.
type Capturer struct {
	Account   AccountAPI
	Tickers   TickerAPI
	Reference string
}

// Capture fetches balances and prices and returns one row per held coin, all
// stamped with capturedAt. The timestamp doubles as the trade API nonce.
func (c *Capturer) Capture(ctx context.Context, capturedAt int64) ([]funds.FundSnapshot, error) {
	balances, err := c.Account.GetFunds(ctx, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("get funds: %w", err)
	}
	if len(balances) == 0 {
		return nil, nil
	}

	pairs := RequiredPairs(balances, c.Reference)
	var tickers map[string]yobit.Ticker
	if len(pairs) > 0 {
		if tickers, err = c.Tickers.GetTickers(ctx, pairs); err != nil {
			return nil, fmt.Errorf("get tickers: %w", err)
		}
	}

	rows := make([]funds.FundSnapshot, 0, len(balances))
	for _, coin := range sortedCoins(balances) {
		price := 1.0
		if coin != c.Reference {
			pair := yobit.PairName(coin, c.Reference)
			t, ok := tickers[pair]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingPrice, pair)
			}
			price = t.Buy
		}

		rows = append(rows, funds.FundSnapshot{
			Coin:       coin,
			Amount:     balances[coin],
			Price:      price,
			CapturedAt: capturedAt,
		})
	}
	return rows, nil
}

// RequiredPairs lists "<coin>_<reference>" for every held coin but the reference, sorted.
func RequiredPairs(balances map[string]float64, reference string) []string {
	var pairs []string
	for _, coin := range sortedCoins(balances) {
		if coin != reference {
			pairs = append(pairs, yobit.PairName(coin, reference))
		}
	}
	return pairs
}

func sortedCoins(balances map[string]float64) []string {
	coins := make([]string, 0, len(balances))
	for coin := range balances {
		coins = append(coins, coin)
	}
	sort.Strings(coins)
	return coins
}
