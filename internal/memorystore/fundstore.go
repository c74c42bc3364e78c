package memorystore

import (
	"context"
	"sort"
	"sync"

	"yotracker/internal/funds"
)

// MemoryFundStore keeps the funds table in memory, grouped by run.
type MemoryFundStore struct {
	mu   sync.RWMutex
	runs map[int64][]funds.FundSnapshot
}

func NewFundStore() *MemoryFundStore {
	return &MemoryFundStore{
		runs: make(map[int64][]funds.FundSnapshot),
	}
}

// AppendFunds validates the whole batch before storing any of it.
func (s *MemoryFundStore) AppendFunds(_ context.Context, rows []funds.FundSnapshot) error {
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		s.runs[row.CapturedAt] = append(s.runs[row.CapturedAt], row)
	}
	return nil
}

func (s *MemoryFundStore) LoadFunds(_ context.Context) ([]funds.FundSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []funds.FundSnapshot
	for _, rows := range s.runs {
		out = append(out, rows...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CapturedAt != out[j].CapturedAt {
			return out[i].CapturedAt < out[j].CapturedAt
		}
		return out[i].Coin < out[j].Coin
	})
	return out, nil
}

// CountRuns returns the number of distinct CapturedAt values stored.
func (s *MemoryFundStore) CountRuns() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
