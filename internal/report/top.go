package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of coins shown before the rest is aggregated.
const DefaultTopN = 10

// OtherLabel names the bucket holding every coin outside the top.
const OtherLabel = "-other-"

// TopEntry is one bar of the holdings chart.
type TopEntry struct {
	Coin  string // lower-case symbol, empty for the other bucket
	Label string
	Value decimal.Decimal
}

// TopHoldings ranks the newest run by TotalValue and keeps the n largest
// coins; the rest is summed into OtherLabel when any remains. The result is
// ascending by value, ties broken by label.
func TopHoldings(h History, n int) []TopEntry {
	latest := append(History(nil), h.Latest()...)
	sort.SliceStable(latest, func(i, j int) bool {
		if c := latest[i].TotalValue.Cmp(latest[j].TotalValue); c != 0 {
			return c < 0
		}
		return latest[i].Coin < latest[j].Coin
	})

	cut := max(len(latest)-n, 0)
	rest, top := latest[:cut], latest[cut:]

	entries := make([]TopEntry, 0, len(top)+1)
	for _, row := range top {
		entries = append(entries, TopEntry{Coin: row.Coin, Label: strings.ToUpper(row.Coin), Value: row.TotalValue})
	}
	if len(rest) > 0 {
		var other decimal.Decimal
		for _, row := range rest {
			other = other.Add(row.TotalValue)
		}
		entries = append(entries, TopEntry{Label: OtherLabel, Value: other})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].Value.Cmp(entries[j].Value); c != 0 {
			return c < 0
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}

// Coins returns the symbols of the entries, skipping the other bucket.
func Coins(entries []TopEntry) []string {
	var coins []string
	for _, e := range entries {
		if e.Coin != "" {
			coins = append(coins, e.Coin)
		}
	}
	return coins
}
