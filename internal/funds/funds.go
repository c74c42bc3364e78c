// Package funds defines the rows shared by the collector and the reporter.
package funds

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSnapshot marks a row that violates the table's invariants.
var ErrInvalidSnapshot = errors.New("invalid fund snapshot")

// FundSnapshot is one coin of one collection run.
type FundSnapshot struct {
	Coin       string  // lower-case symbol, e.g. "btc"
	Amount     float64 // held quantity including order reserves
	Price      float64 // value of one unit in the reference currency
	CapturedAt int64   // Unix seconds, shared by every row of a run
}

func (f FundSnapshot) Validate() error {
	switch {
	case f.Coin == "":
		return fmt.Errorf("%w: empty coin at %d", ErrInvalidSnapshot, f.CapturedAt)
	case !finite(f.Amount):
		return fmt.Errorf("%w: %s amount %v is not a finite number", ErrInvalidSnapshot, f.Coin, f.Amount)
	case !finite(f.Price):
		return fmt.Errorf("%w: %s price %v is not a finite number", ErrInvalidSnapshot, f.Coin, f.Price)
	case f.Amount < 0:
		return fmt.Errorf("%w: %s amount %v is negative", ErrInvalidSnapshot, f.Coin, f.Amount)
	case f.Price < 0:
		return fmt.Errorf("%w: %s price %v is negative", ErrInvalidSnapshot, f.Coin, f.Price)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Store is the append-only history table.
type Store interface {
	// AppendFunds writes rows as one atomic batch.
	AppendFunds(ctx context.Context, rows []FundSnapshot) error
	// LoadFunds returns every row, ordered by CapturedAt then Coin.
	LoadFunds(ctx context.Context) ([]FundSnapshot, error)
}
