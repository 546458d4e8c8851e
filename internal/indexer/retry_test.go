package indexer

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestWithRetryEventualSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if calls != 3 {
		t.Fatalf("call count mismatch: %d", calls)
	}
}

func TestWithRetryExhausted(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 2, time.Millisecond, func(context.Context) error {
		calls++
		return fmt.Errorf("always fails")
	})
	if err == nil {
		t.Fatalf("expected error after retries exhausted")
	}
	if calls != 3 {
		t.Fatalf("call count mismatch: %d", calls)
	}
}

func TestWithRetryNoRetries(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 0, time.Millisecond, func(context.Context) error {
		calls++
		return fmt.Errorf("fails")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("zero retries should call once: %d", calls)
	}
}

func TestWithRetryContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := withRetry(ctx, 5, time.Hour, func(context.Context) error {
		return fmt.Errorf("fails")
	})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
