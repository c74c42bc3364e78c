package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a job immediately and then on every Interval boundary (UTC).
type Scheduler struct {
	Interval time.Duration
	Logger   *zap.Logger

	// now and after are replaced in tests.
	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

func New(interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{Interval: interval, Logger: logger, now: time.Now, after: time.After}
}

// Run blocks until ctx is done or job fails. A failed run stops the schedule;
// the next tick never retries it.
func (s *Scheduler) Run(ctx context.Context, job func(context.Context) error) error {
	for {
		if err := job(ctx); err != nil {
			return err
		}

		// Wait until the next boundary, e.g. the top of the hour for 1h
		now := s.now().UTC()
		next := now.Truncate(s.Interval).Add(s.Interval)
		s.Logger.Info("next run scheduled", zap.Time("at", next))

		select {
		case <-ctx.Done():
			return nil
		case <-s.after(next.Sub(now)):
		}
	}
}
