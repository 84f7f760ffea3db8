package query

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoll_RefetchesOnInterval(t *testing.T) {
	cache := New(DefaultConfig())
	key := NewKey("dashboard-stats", nil)

	var calls atomic.Int32
	var updates atomic.Int32

	poller := Poll(cache, key, 30*time.Millisecond,
		func(context.Context) (int, error) {
			return int(calls.Add(1)), nil
		},
		func(v int, err error) {
			if err != nil {
				t.Errorf("Unexpected poll error: %v", err)
				return
			}
			updates.Add(1)
		},
	)
	defer poller.Stop()

	// The first tick is immediate; further ticks follow the interval.
	waitFor(t, time.Second, func() bool { return calls.Load() >= 3 })
	if updates.Load() < 3 {
		t.Errorf("Expected at least 3 updates, got %d", updates.Load())
	}

	// Polled results land in the cache for other consumers.
	if got := cache.State(key); got != StatusSuccess {
		t.Errorf("Expected success state after polling, got %s", got)
	}
}

func TestPoll_StopHaltsTicks(t *testing.T) {
	cache := New(DefaultConfig())
	key := NewKey("dashboard-stats", nil)

	var calls atomic.Int32
	poller := Poll(cache, key, 20*time.Millisecond,
		func(context.Context) (int, error) {
			return int(calls.Add(1)), nil
		}, nil)

	waitFor(t, time.Second, func() bool { return calls.Load() >= 1 })
	poller.Stop()

	after := calls.Load()
	time.Sleep(80 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("Expected no ticks after Stop, got %d more", calls.Load()-after)
	}

	// Stop is idempotent.
	poller.Stop()
}

func TestPoll_ErrorDelivered(t *testing.T) {
	cache := New(DefaultConfig())
	key := NewKey("dashboard-stats", nil)

	pollErr := errors.New("backend down")
	var gotErr atomic.Bool

	poller := Poll(cache, key, time.Hour,
		func(context.Context) (int, error) {
			return 0, pollErr
		},
		func(_ int, err error) {
			if errors.Is(err, pollErr) {
				gotErr.Store(true)
			}
		},
	)
	defer poller.Stop()

	waitFor(t, time.Second, func() bool { return gotErr.Load() })

	if got := cache.State(key); got != StatusError {
		t.Errorf("Expected error state, got %s", got)
	}
}
