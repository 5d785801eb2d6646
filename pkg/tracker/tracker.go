// Package tracker accumulates named scalar metrics into running averages.
package tracker

import (
	"sync"

	"github.com/piotroxp/orb-models/pkg/metric"
)

// ScalarMetricTracker keeps running averages of named scalar metrics. A
// training loop feeds it per-batch values and reads per-epoch means.
type ScalarMetricTracker struct {
	mu     sync.RWMutex
	sums   map[string]float64
	counts map[string]int64
}

func New() *ScalarMetricTracker {
	t := &ScalarMetricTracker{}
	t.Reset()
	return t
}

// Reset discards all accumulated sums and counts.
func (t *ScalarMetricTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sums = make(map[string]float64)
	t.counts = make(map[string]int64)
}

// Update adds a batch of named values to the running totals. Non-scalar
// values and values containing NaN are skipped without error: an update
// batch may legitimately mix scalar and non-scalar metrics.
func (t *ScalarMetricTracker) Update(metrics map[string]metric.Value) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k, v := range metrics {
		if !v.IsScalar() {
			continue
		}
		if v.HasNaN() {
			continue
		}
		t.sums[k] += v.Item()
		t.counts[k]++
	}
}

// Metrics returns the running average for every tracked key. Keys are only
// inserted together with a count increment, so the division is always safe.
func (t *ScalarMetricTracker) Metrics() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make(map[string]float64, len(t.sums))
	for k, sum := range t.sums {
		res[k] = sum / float64(t.counts[k])
	}
	return res
}

// Count returns how many values have been accumulated for the given key.
func (t *ScalarMetricTracker) Count(name string) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.counts[name]
}

// PrefixKeys returns a copy of m with every key renamed to prefix+sep+key.
func PrefixKeys[T any](m map[string]T, prefix, sep string) map[string]T {
	res := make(map[string]T, len(m))
	for k, v := range m {
		res[prefix+sep+k] = v
	}
	return res
}
