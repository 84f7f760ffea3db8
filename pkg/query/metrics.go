package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by tier and freshness.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_cache_hits_total",
			Help: "Total number of query cache hits",
		},
		[]string{"tier", "freshness"}, // tier: "memory"|"shared", freshness: "fresh"|"stale"
	)

	// CacheMisses tracks cache misses that went to the network.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_cache_misses_total",
			Help: "Total number of query cache misses",
		},
	)

	// Refetches tracks network fetches by what triggered them.
	Refetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_refetches_total",
			Help: "Total number of network fetches by trigger",
		},
		[]string{"trigger"}, // "miss", "revalidate", "poll"
	)

	// Invalidations tracks keys marked stale after mutations.
	Invalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_invalidations_total",
			Help: "Total number of query key invalidations",
		},
	)

	// DedupedFetches tracks fetches collapsed into an in-flight request.
	DedupedFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_deduped_fetches_total",
			Help: "Total number of fetches served by an identical in-flight request",
		},
	)

	// SharedTierErrors tracks shared tier operation errors. The cache
	// falls back to the network when the shared tier fails.
	SharedTierErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stitchdesk_query_shared_tier_errors_total",
			Help: "Total number of shared cache tier errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
