package query

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := NewRedisStore(setupRedis(t))
	ctx := context.Background()

	key := "sd:customers"
	payload := []byte(`[{"name":"Asha"}]`)

	if _, err := store.Get(ctx, key); !errors.Is(err, ErrSharedMiss) {
		t.Fatalf("Expected ErrSharedMiss for absent key, got %v", err)
	}

	if err := store.Set(ctx, key, payload, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Expected %s, got %s", payload, got)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, key); !errors.Is(err, ErrSharedMiss) {
		t.Errorf("Expected ErrSharedMiss after delete, got %v", err)
	}
}

func TestRedisStore_NonPositiveTTLNotCached(t *testing.T) {
	store := NewRedisStore(setupRedis(t))
	ctx := context.Background()

	if err := store.Set(ctx, "sd:orders", []byte(`[]`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := store.Get(ctx, "sd:orders"); !errors.Is(err, ErrSharedMiss) {
		t.Errorf("Zero TTL payload must not be stored, got %v", err)
	}
}

func TestFetch_SharedTierServesMiss(t *testing.T) {
	redisClient := setupRedis(t)
	shared := NewRedisStore(redisClient)
	ctx := context.Background()

	key := NewKey("customers", nil)

	// A previous process wrote the payload through.
	if err := shared.Set(ctx, key.String(), []byte(`["Asha","Meera"]`), time.Minute); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	cache := New(Config{StaleTime: time.Minute, Shared: shared, SharedTTL: time.Minute})

	var networkCalls atomic.Int32
	v, err := Fetch(ctx, cache, key, func(context.Context) ([]string, error) {
		networkCalls.Add(1)
		return nil, errors.New("should not reach the network")
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if networkCalls.Load() != 0 {
		t.Errorf("Expected the shared tier to absorb the miss, got %d network calls", networkCalls.Load())
	}
	if len(v) != 2 || v[0] != "Asha" {
		t.Errorf("Unexpected shared tier payload: %v", v)
	}
}

func TestFetch_SharedTierWriteThrough(t *testing.T) {
	redisClient := setupRedis(t)
	shared := NewRedisStore(redisClient)
	ctx := context.Background()

	key := NewKey("orders", nil)
	cache := New(Config{StaleTime: time.Minute, Shared: shared, SharedTTL: time.Minute})

	if _, err := Fetch(ctx, cache, key, func(context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	}); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	data, err := shared.Get(ctx, key.String())
	if err != nil {
		t.Fatalf("Expected write-through payload in Redis: %v", err)
	}
	if string(data) != "[1,2,3]" {
		t.Errorf("Unexpected write-through payload: %s", data)
	}
}

func TestInvalidate_DeletesSharedEntry(t *testing.T) {
	redisClient := setupRedis(t)
	shared := NewRedisStore(redisClient)
	ctx := context.Background()

	key := NewKey("invoices", nil)
	cache := New(Config{StaleTime: time.Minute, Shared: shared, SharedTTL: time.Minute})

	if _, err := Fetch(ctx, cache, key, func(context.Context) (int, error) {
		return 7, nil
	}); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	cache.Invalidate(ctx, key)

	if _, err := shared.Get(ctx, key.String()); !errors.Is(err, ErrSharedMiss) {
		t.Errorf("Expected shared entry gone after invalidation, got %v", err)
	}
}
