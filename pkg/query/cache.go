package query

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle state of a query key.
type Status int

const (
	// StatusIdle means the key has never been fetched.
	StatusIdle Status = iota

	// StatusLoading means a fetch or background revalidation is running.
	StatusLoading

	// StatusSuccess means the key holds the latest successful payload.
	StatusSuccess

	// StatusError means the most recent fetch failed.
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// entry is the cached state for one key. Guarded by Cache.mu.
type entry struct {
	status       Status
	value        any
	hasValue     bool
	err          error
	updatedAt    time.Time
	invalid      bool
	revalidating bool
}

// Config holds cache configuration.
type Config struct {
	// StaleTime is how long a successful result is served without
	// revalidation. Past it, the cached value is still served immediately
	// while a background refetch runs.
	StaleTime time.Duration

	// Shared is an optional second cache tier consulted on memory misses
	// and written through on success. Nil disables it.
	Shared SharedStore

	// SharedTTL is the TTL for shared tier writes.
	SharedTTL time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		StaleTime: 30 * time.Second,
		SharedTTL: 5 * time.Minute,
	}
}

// Cache is the process-wide query cache. One instance is shared by every
// page of the application; it is the synchronization point for all server
// state held client-side.
type Cache struct {
	config  Config
	logger  zerolog.Logger
	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates a query cache.
func New(cfg Config) *Cache {
	if cfg.StaleTime <= 0 {
		cfg.StaleTime = 30 * time.Second
	}
	if cfg.SharedTTL <= 0 {
		cfg.SharedTTL = 5 * time.Minute
	}
	return &Cache{
		config:  cfg,
		logger:  log.With().Str("component", "query-cache").Logger(),
		entries: make(map[string]*entry),
	}
}

// Fetch resolves a query through cache c. A fresh hit returns immediately; a
// stale hit returns the stale value and revalidates in the background; a
// miss blocks on the network. Concurrent fetches for the same key collapse
// into a single upstream call.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	keyStr := key.String()

	fetch := func(fctx context.Context) (any, error) { return fn(fctx) }
	decode := func(data []byte) (any, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}

	c.mu.Lock()
	e := c.entries[keyStr]
	if e != nil && e.hasValue && !e.invalid {
		if val, ok := e.value.(T); ok {
			age := time.Since(e.updatedAt)
			if e.status == StatusSuccess && age < c.config.StaleTime {
				c.mu.Unlock()
				CacheHits.WithLabelValues("memory", "fresh").Inc()
				return val, nil
			}
			// Stale (or already revalidating): serve the last success
			// immediately and refresh behind the caller's back.
			if !e.revalidating {
				e.revalidating = true
				e.status = StatusLoading
				go c.refetch(context.Background(), keyStr, "revalidate", fetch, decode)
			}
			c.mu.Unlock()
			CacheHits.WithLabelValues("memory", "stale").Inc()
			return val, nil
		}
	}
	c.mu.Unlock()

	CacheMisses.Inc()
	v, err, dedup := c.group.Do(keyStr, func() (any, error) {
		return c.fetchAndStore(ctx, keyStr, "miss", fetch, decode)
	})
	if dedup {
		DedupedFetches.Inc()
	}
	if err != nil {
		return zero, err
	}

	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("query: conflicting result type for key %s", keyStr)
	}
	return val, nil
}

// refetch runs a background revalidation through the singleflight group so a
// concurrent blocking fetch for the same key shares the same network call.
func (c *Cache) refetch(ctx context.Context, keyStr, trigger string, fetch func(context.Context) (any, error), decode func([]byte) (any, error)) {
	_, _, _ = c.group.Do(keyStr, func() (any, error) {
		return c.fetchAndStore(ctx, keyStr, trigger, fetch, decode)
	})
}

// fetchAndStore performs the network fetch (or shared tier read) for a key
// and records the outcome. Runs inside the singleflight group.
func (c *Cache) fetchAndStore(ctx context.Context, keyStr, trigger string, fetch func(context.Context) (any, error), decode func([]byte) (any, error)) (any, error) {
	// Consult the shared tier before the network, but only for plain
	// misses: revalidations and polls exist to reach the backend.
	if c.config.Shared != nil && trigger == "miss" {
		data, err := c.config.Shared.Get(ctx, keyStr)
		switch {
		case err == nil:
			if v, derr := decode(data); derr == nil {
				CacheHits.WithLabelValues("shared", "fresh").Inc()
				c.storeSuccess(keyStr, v)
				return v, nil
			}
			c.logger.Warn().Str("key", keyStr).Msg("Shared tier entry undecodable, refetching")
		case err != ErrSharedMiss:
			SharedTierErrors.WithLabelValues("get").Inc()
			c.logger.Warn().Err(err).Str("key", keyStr).Msg("Shared tier get failed")
		}
	}

	Refetches.WithLabelValues(trigger).Inc()

	c.mu.Lock()
	e := c.ensureEntry(keyStr)
	e.status = StatusLoading
	c.mu.Unlock()

	v, err := fetch(ctx)
	if err != nil {
		c.mu.Lock()
		e := c.ensureEntry(keyStr)
		e.status = StatusError
		e.err = err
		e.revalidating = false
		c.mu.Unlock()

		c.logger.Debug().Err(err).Str("key", keyStr).Str("trigger", trigger).Msg("Query fetch failed")
		return nil, err
	}

	c.storeSuccess(keyStr, v)

	if c.config.Shared != nil {
		if data, merr := json.Marshal(v); merr == nil {
			if serr := c.config.Shared.Set(ctx, keyStr, data, c.config.SharedTTL); serr != nil {
				SharedTierErrors.WithLabelValues("set").Inc()
				c.logger.Warn().Err(serr).Str("key", keyStr).Msg("Shared tier set failed")
			}
		}
	}

	return v, nil
}

// storeSuccess records a successful payload for a key.
func (c *Cache) storeSuccess(keyStr string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.ensureEntry(keyStr)
	e.status = StatusSuccess
	e.value = v
	e.hasValue = true
	e.err = nil
	e.updatedAt = time.Now()
	e.invalid = false
	e.revalidating = false
}

// ensureEntry returns the entry for a key, creating it if needed. Caller
// holds c.mu.
func (c *Cache) ensureEntry(keyStr string) *entry {
	e := c.entries[keyStr]
	if e == nil {
		e = &entry{status: StatusIdle}
		c.entries[keyStr] = e
	}
	return e
}

// Invalidate marks the given keys stale. The next Fetch for each goes to the
// network; pages call this after successful write mutations.
func (c *Cache) Invalidate(ctx context.Context, keys ...Key) {
	c.mu.Lock()
	for _, key := range keys {
		keyStr := key.String()
		if e := c.entries[keyStr]; e != nil {
			e.invalid = true
		}
		Invalidations.Inc()
	}
	c.mu.Unlock()

	if c.config.Shared != nil {
		for _, key := range keys {
			if err := c.config.Shared.Delete(ctx, key.String()); err != nil {
				SharedTierErrors.WithLabelValues("delete").Inc()
				c.logger.Warn().Err(err).Str("key", key.String()).Msg("Shared tier delete failed")
			}
		}
	}
}

// InvalidateResource marks every cached key of the given resources stale:
// lists, filtered lists and single records alike.
func (c *Cache) InvalidateResource(ctx context.Context, resources ...string) {
	var invalidated []string

	c.mu.Lock()
	for keyStr, e := range c.entries {
		for _, resource := range resources {
			if matchesResource(keyStr, resource) {
				e.invalid = true
				invalidated = append(invalidated, keyStr)
				Invalidations.Inc()
				break
			}
		}
	}
	c.mu.Unlock()

	if c.config.Shared != nil {
		for _, keyStr := range invalidated {
			if err := c.config.Shared.Delete(ctx, keyStr); err != nil {
				SharedTierErrors.WithLabelValues("delete").Inc()
				c.logger.Warn().Err(err).Str("key", keyStr).Msg("Shared tier delete failed")
			}
		}
	}
}

// State returns the lifecycle state of a key.
func (c *Cache) State(key Key) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[key.String()]
	if e == nil {
		return StatusIdle
	}
	return e.status
}

// Err returns the recorded error for a key in StatusError.
func (c *Cache) Err(key Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[key.String()]
	if e == nil {
		return nil
	}
	return e.err
}

// Remove drops a key entirely, e.g. on navigation away from a record page.
func (c *Cache) Remove(ctx context.Context, key Key) {
	keyStr := key.String()

	c.mu.Lock()
	delete(c.entries, keyStr)
	c.mu.Unlock()

	if c.config.Shared != nil {
		if err := c.config.Shared.Delete(ctx, keyStr); err != nil {
			SharedTierErrors.WithLabelValues("delete").Inc()
		}
	}
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
