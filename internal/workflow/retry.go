package workflow

import (
	"context"
	"time"
)

// RetryPolicy is the fixed-delay, bounded-attempt wrapper the engine applies
// uniformly around every stage invocation. It is a plain configuration value;
// there is no per-stage override.
type RetryPolicy struct {
	Delay       time.Duration
	MaxAttempts int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Delay:       2 * time.Second,
		MaxAttempts: 3,
	}
}

// wait blocks for the configured delay, returning early if the run context
// is cancelled.
func (p RetryPolicy) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
