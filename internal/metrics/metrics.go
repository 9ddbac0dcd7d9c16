package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Descriptor evaluation counters
	DescriptorEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "policy_descriptor_evaluations_total",
			Help: "Total number of cache descriptor evaluations",
		},
		[]string{"outcome"}, // ok, unknown_view
	)

	// Tag invalidation counters
	InvalidationRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "policy_invalidation_requests_total",
			Help: "Total number of tag invalidation requests",
		},
	)

	InvalidatedTags = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "policy_invalidated_tags_total",
			Help: "Total number of tags invalidated",
		},
	)

	// Store request/hit/miss counters
	CacheRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "Total number of cache store requests",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache store hits",
		},
		[]string{"level"}, // l1, l2
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache store misses",
		},
	)

	CacheBypass = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_bypass_total",
			Help: "Total number of requests bypassed because the policy disables caching",
		},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Total number of cache store errors",
		},
		[]string{"level", "kind"}, // kind: encode, decode, upstream
	)

	// Get operation latency
	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_operation_duration_seconds",
			Help:    "Duration of cache store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "level"},
	)

	// L1 capacity metrics (in-memory store only)
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity_bytes",
			Help: "L1 cache capacity in bytes",
		},
		[]string{"level"},
	)

	CacheUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_used_bytes",
			Help: "L1 cache used space in bytes",
		},
		[]string{"level"},
	)
)

// RecordEvaluation records a descriptor evaluation
func RecordEvaluation(outcome string) {
	DescriptorEvaluations.WithLabelValues(outcome).Inc()
}

// RecordInvalidation records a tag invalidation request
func RecordInvalidation(tagCount int) {
	InvalidationRequests.Inc()
	InvalidatedTags.Add(float64(tagCount))
}

// RecordCacheRequest records a cache store request
func RecordCacheRequest() {
	CacheRequests.Inc()
}

// RecordCacheHit records a cache hit at the given level
func RecordCacheHit(level string) {
	CacheHits.WithLabelValues(level).Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMisses.Inc()
}

// RecordCacheBypass records a policy-level bypass
func RecordCacheBypass() {
	CacheBypass.Inc()
}

// RecordCacheError records a cache store error
func RecordCacheError(level, kind string) {
	CacheErrors.WithLabelValues(level, kind).Inc()
}

// UpdateL1CacheCapacity updates L1 cache capacity metrics
func UpdateL1CacheCapacity(capacity, used int64) {
	CacheCapacity.WithLabelValues("l1").Set(float64(capacity))
	CacheUsed.WithLabelValues("l1").Set(float64(used))
}

// TimeCacheOperation returns a timer function for measuring store operation duration
func TimeCacheOperation(operation, level string) func() {
	timer := prometheus.NewTimer(CacheOperationDuration.WithLabelValues(operation, level))
	return func() {
		timer.ObserveDuration()
	}
}
