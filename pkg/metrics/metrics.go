// Package metrics provides the centralized Prometheus metrics registry for
// the StitchDesk client. All metrics are defined in their respective packages
// (client, query) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - stitchdesk_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - stitchdesk_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - stitchdesk_errors_total{class} (Counter): Errors by class (auth, forbidden, client, server, network)
//   - stitchdesk_forced_logouts_total (Counter): Sessions cleared after a 401
//   - stitchdesk_subscription_alerts_total (Counter): Subscription expiry alerts raised on 403
//
// Query Cache Metrics (pkg/query):
//   - stitchdesk_query_cache_hits_total{tier, freshness} (Counter): Cache hits by tier (memory, shared) and freshness (fresh, stale)
//   - stitchdesk_query_cache_misses_total (Counter): Cache misses
//   - stitchdesk_query_refetches_total{trigger} (Counter): Network fetches by trigger (miss, revalidate, poll)
//   - stitchdesk_query_invalidations_total (Counter): Keys marked stale after mutations
//   - stitchdesk_query_deduped_fetches_total (Counter): Concurrent fetches collapsed into a shared call
//   - stitchdesk_query_shared_tier_errors_total{operation} (Counter): Shared tier operation errors
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(stitchdesk_query_cache_hits_total[5m])) /
//   (sum(rate(stitchdesk_query_cache_hits_total[5m])) + sum(rate(stitchdesk_query_cache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(stitchdesk_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(stitchdesk_request_duration_seconds_bucket[5m]))
//
//   # Forced Logout Rate
//   rate(stitchdesk_forced_logouts_total[5m])
