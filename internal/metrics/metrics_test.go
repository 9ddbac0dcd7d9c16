package metrics

import (
	"testing"
)

func TestMetrics(t *testing.T) {
	// Metrics are package-level, automatically registered collectors; these
	// tests verify the helpers don't panic.

	t.Run("RecordEvaluation", func(t *testing.T) {
		RecordEvaluation("ok")
		RecordEvaluation("unknown_view")
	})

	t.Run("RecordInvalidation", func(t *testing.T) {
		RecordInvalidation(3)
	})

	t.Run("RecordCacheRequest", func(t *testing.T) {
		RecordCacheRequest()
	})

	t.Run("RecordCacheHit", func(t *testing.T) {
		RecordCacheHit("l1")
		RecordCacheHit("l2")
	})

	t.Run("RecordCacheMiss", func(t *testing.T) {
		RecordCacheMiss()
	})

	t.Run("RecordCacheBypass", func(t *testing.T) {
		RecordCacheBypass()
	})

	t.Run("RecordCacheError", func(t *testing.T) {
		RecordCacheError("l1", "encode")
	})

	t.Run("UpdateL1CacheCapacity", func(t *testing.T) {
		UpdateL1CacheCapacity(1000000, 500000)
	})

	t.Run("TimeCacheOperation", func(t *testing.T) {
		timer := TimeCacheOperation("get", "multi")
		timer()
	})
}
