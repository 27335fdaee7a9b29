package sparseset

import "github.com/hupe1980/sparseset/wordpool"

// DefaultSparseGap is the default sparse-gap threshold: the maximum
// distance between a value and a block's current range within which the
// block is grown or rebased rather than split. 640 values (ten words)
// trades the memory cost of bridging a gap with zero words against the
// fixed overhead of a second block.
const DefaultSparseGap = 640

type options struct {
	sparseGap    int
	capacityHint int
	pool         *wordpool.Pool
	logger       *Logger
	metrics      MetricsCollector
}

// Option configures Set construction.
type Option func(*options)

// WithSparseGap sets the sparse-gap threshold in values. Values below one
// word (64) are raised to one word; a larger gap keeps clustered values in
// fewer, wider blocks.
func WithSparseGap(gap int) Option {
	return func(o *options) {
		if gap < 64 {
			gap = 64
		}
		o.sparseGap = gap
	}
}

// WithCapacityHint pre-sizes the index's backing block array for the
// expected number of distinct value clusters.
func WithCapacityHint(hint int) Option {
	return func(o *options) {
		if hint > 0 {
			o.capacityHint = hint
		}
	}
}

// WithBufferPool attaches a shared word-buffer pool. Block growth and
// compaction lease buffers from the pool instead of allocating; buffers
// larger than the pool maximum fall back to the heap.
func WithBufferPool(p *wordpool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithLogger sets the logger for structural debug events (block creation,
// rebase, growth, compaction). Defaults to a noop logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector for operation outcomes.
// Defaults to NoopMetricsCollector.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
