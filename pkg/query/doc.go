// Package query provides the client-side data synchronization layer: a
// process-wide cache of server state keyed by resource-identifying tuples.
//
// Every page declares its data needs as a Key plus a fetch function from a
// service package. The cache deduplicates concurrent fetches for the same
// key, serves stale data immediately while revalidating in the background,
// and refetches after mutations invalidate related keys.
//
// # State machine
//
// Each key moves through idle -> loading -> success | error. A background
// revalidation transitions success -> loading -> success without ever
// clearing the last successful value: callers always see the most recent
// successful fetch for the key.
//
// # Basic usage
//
//	cache := query.New(query.DefaultConfig())
//	key := query.NewKey("customers", nil)
//
//	customers, err := query.Fetch(ctx, cache, key, func(ctx context.Context) ([]models.Customer, error) {
//		return svc.List(ctx, services.CustomerListParams{})
//	})
//
// # Invalidation
//
//	// after a successful delete mutation:
//	cache.InvalidateResource(ctx, "customers")
//	// the next Fetch for any customers key goes to the network
//
// # Polling
//
//	poller := query.Poll(cache, statsKey, 30*time.Second, fetchStats, onUpdate)
//	defer poller.Stop()
//
// # Tiers
//
// The memory tier is always present. An optional shared tier (Redis) lets
// several processes reuse one another's fetches; it is consulted only on a
// memory miss and written through on success.
package query
