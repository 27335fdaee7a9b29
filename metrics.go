package sparseset

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add. added reports whether the value
	// was newly inserted.
	RecordAdd(added bool)

	// RecordRemove is called after each Remove. removed reports whether a
	// present value was actually cleared.
	RecordRemove(removed bool)

	// RecordCompact is called after each Compact. changed reports whether
	// any buffer shape changed.
	RecordCompact(changed bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)     {}
func (NoopMetricsCollector) RecordRemove(bool)  {}
func (NoopMetricsCollector) RecordCompact(bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// All counters are safe for concurrent reads while a single writer
// mutates the set.
type BasicMetricsCollector struct {
	AddCount     atomic.Int64
	AddNoop      atomic.Int64
	RemoveCount  atomic.Int64
	RemoveNoop   atomic.Int64
	CompactCount atomic.Int64
	CompactNoop  atomic.Int64
}

func (c *BasicMetricsCollector) RecordAdd(added bool) {
	if added {
		c.AddCount.Add(1)
	} else {
		c.AddNoop.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordRemove(removed bool) {
	if removed {
		c.RemoveCount.Add(1)
	} else {
		c.RemoveNoop.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordCompact(changed bool) {
	if changed {
		c.CompactCount.Add(1)
	} else {
		c.CompactNoop.Add(1)
	}
}
