package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/antarid/antar/internal/pkg/logger"
)

// Config shapes the backoff schedule.
type Config struct {
	Attempts   int           // total tries, including the first
	BaseDelay  time.Duration // delay after the first failure
	MaxDelay   time.Duration // ceiling for the grown delay
	Multiplier float64       // growth factor per attempt
}

// DefaultConfig suits dependency connections at startup: the process rides
// out a dependency that comes up a few seconds after it does.
func DefaultConfig() Config {
	return Config{
		Attempts:   5,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted, or ctx ends.
// Waits grow exponentially with a little jitter so restarting replicas do
// not hammer a recovering dependency in lockstep.
func Do(ctx context.Context, name string, cfg Config, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				logger.Info("Dependency became available",
					logger.String("dependency", name),
					logger.Int("attempt", attempt))
			}
			return nil
		}

		if attempt == cfg.Attempts {
			break
		}

		delay := backoffDelay(cfg, attempt)
		logger.Warn("Dependency not ready, retrying",
			logger.String("dependency", name),
			logger.Err(lastErr),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%s unavailable after %d attempts: %w", name, cfg.Attempts, lastErr)
}

func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	// Up to 10% jitter.
	delay += delay * 0.1 * rand.Float64()
	return time.Duration(delay)
}
