package report

import (
	"math"
	"sort"
	"strings"
	"time"
)

// MaxLeaders is the leaderboard size above which only the extremes are kept.
const MaxLeaders = 20

// Pivot is the price history as a time × coin table. Missing cells are NaN.
type Pivot struct {
	Times  []int64              // CapturedAt, ascending
	Coins  []string             // ascending
	Values map[string][]float64 // coin → one value per entry of Times
}

// NewPivot tabulates Price per run for coins, or for every coin when coins is
// nil. Several rows for one cell are averaged.
func NewPivot(h History, coins []string) Pivot {
	var keep map[string]bool
	if coins != nil {
		keep = make(map[string]bool, len(coins))
		for _, c := range coins {
			keep[c] = true
		}
	}

	timeIndex := map[int64]int{}
	var times []int64
	seen := map[string]bool{}
	var cols []string
	for _, row := range h {
		if keep != nil && !keep[row.Coin] {
			continue
		}
		if _, ok := timeIndex[row.CapturedAt]; !ok {
			timeIndex[row.CapturedAt] = len(times)
			times = append(times, row.CapturedAt)
		}
		if !seen[row.Coin] {
			seen[row.Coin] = true
			cols = append(cols, row.Coin)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	for i, ts := range times {
		timeIndex[ts] = i
	}
	sort.Strings(cols)

	sums := make(map[string][]float64, len(cols))
	counts := make(map[string][]int, len(cols))
	for _, c := range cols {
		sums[c] = make([]float64, len(times))
		counts[c] = make([]int, len(times))
	}
	for _, row := range h {
		if keep != nil && !keep[row.Coin] {
			continue
		}
		i := timeIndex[row.CapturedAt]
		sums[row.Coin][i] += row.Price
		counts[row.Coin][i]++
	}

	values := make(map[string][]float64, len(cols))
	for _, c := range cols {
		col := make([]float64, len(times))
		for i := range col {
			if counts[c][i] == 0 {
				col[i] = math.NaN()
			} else {
				col[i] = sums[c][i] / float64(counts[c][i])
			}
		}
		values[c] = col
	}

	return Pivot{Times: times, Coins: cols, Values: values}
}

// Relative expresses every column as change from its first observed value:
// v/base - 1. A column whose first value is 0 is already relative to its
// start and is kept as is, so applying Relative twice changes nothing.
// Missing cells stay missing.
func Relative(p Pivot) Pivot {
	out := Pivot{Times: p.Times, Coins: p.Coins, Values: make(map[string][]float64, len(p.Coins))}
	for _, coin := range p.Coins {
		out.Values[coin] = relativeColumn(p.Values[coin])
	}
	return out
}

func relativeColumn(col []float64) []float64 {
	out := make([]float64, len(col))
	base := math.NaN()
	for i, v := range col {
		if math.IsNaN(base) && !math.IsNaN(v) {
			base = v
		}
		switch {
		case math.IsNaN(v):
			out[i] = math.NaN()
		case base == 0:
			out[i] = v
		default:
			out[i] = v/base - 1
		}
	}
	return out
}

// Point is one observed value of a series.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is one coin's column without its missing cells.
type Series struct {
	Coin   string
	Points []Point
}

// AsSeries lists one series per coin, skipping missing cells and empty columns.
func (p Pivot) AsSeries() []Series {
	var out []Series
	for _, coin := range p.Coins {
		s := Series{Coin: coin}
		for i, v := range p.Values[coin] {
			if !math.IsNaN(v) {
				s.Points = append(s.Points, Point{Time: CapturedTime(p.Times[i]), Value: v})
			}
		}
		if len(s.Points) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// TopExchange is the relative price history of the top-holdings coins.
func TopExchange(h History, top []TopEntry) []Series {
	coins := Coins(top)
	if len(coins) == 0 {
		return nil
	}
	return Relative(NewPivot(h, coins)).AsSeries()
}

// Leader is a coin's change since its first observed price.
type Leader struct {
	Coin   string // upper-case label
	Change float64
}

// GrowthLeaders ranks every coin present in the newest run by its relative
// price change. With more than MaxLeaders coins only the MaxLeaders/2 best
// and worst are kept. Equal changes are ordered by coin. The result is
// ascending by change.
func GrowthLeaders(h History) []Leader {
	rel := Relative(NewPivot(h, nil))
	if len(rel.Times) == 0 {
		return nil
	}
	last := len(rel.Times) - 1

	var ranked []Leader
	for _, coin := range rel.Coins {
		if v := rel.Values[coin][last]; !math.IsNaN(v) {
			ranked = append(ranked, Leader{Coin: strings.ToUpper(coin), Change: v})
		}
	}

	// descending by change, ascending by coin
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Change != ranked[j].Change {
			return ranked[i].Change > ranked[j].Change
		}
		return ranked[i].Coin < ranked[j].Coin
	})

	if len(ranked) > MaxLeaders {
		half := MaxLeaders / 2
		kept := append([]Leader(nil), ranked[:half]...)
		ranked = append(kept, ranked[len(ranked)-half:]...)
	}

	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}
	return ranked
}
