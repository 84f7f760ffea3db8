package query

import (
	"context"
	"sync"
	"time"
)

// Poller refetches one key on a fixed interval, independent of invalidation
// signals. The dashboard statistics page uses a 30 second poller.
type Poller struct {
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// Poll starts polling a key. The fetch runs once immediately, then every
// interval until Stop. Each result (value or error) is delivered to
// onUpdate; successful results also land in the cache for other consumers of
// the key.
//
// Polling fetches bypass freshness checks: each tick reaches the backend.
func Poll[T any](c *Cache, key Key, interval time.Duration, fn func(context.Context) (T, error), onUpdate func(T, error)) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	p := &Poller{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	keyStr := key.String()
	fetch := func(fctx context.Context) (any, error) { return fn(fctx) }

	tick := func() {
		// Polls never read the shared tier, so no decoder is needed.
		v, err, _ := c.group.Do(keyStr, func() (any, error) {
			return c.fetchAndStore(context.Background(), keyStr, "poll", fetch, nil)
		})
		if onUpdate == nil {
			return
		}
		if err != nil {
			var zero T
			onUpdate(zero, err)
			return
		}
		if val, ok := v.(T); ok {
			onUpdate(val, nil)
		}
	}

	go func() {
		defer close(p.done)

		tick()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()

	return p
}

// Stop halts the poller. It is safe to call more than once; Stop returns
// after the polling goroutine has exited. An in-flight fetch is not
// interrupted; its result is simply recorded and discarded.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}
