package indexer

import (
	"context"
	"time"
)

const maxRetryDelay = 30 * time.Second

// withRetry runs fn until it succeeds or maxRetries extra attempts have
// failed. The delay starts at baseDelay and doubles per attempt, capped
// at maxRetryDelay so a long ingest run cannot back off unbounded.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}

		delay := baseDelay << uint(attempt)
		if delay > maxRetryDelay || delay <= 0 {
			delay = maxRetryDelay
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
