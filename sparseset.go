package sparseset

import (
	"fmt"
	"strings"

	"github.com/hupe1980/sparseset/internal/block"
	"github.com/hupe1980/sparseset/internal/blockindex"
	"github.com/hupe1980/sparseset/wordpool"
)

// Set is a memory-efficient integer set backed by word-aligned bit
// blocks. The zero value is not usable; construct with New, FromValues,
// or FromSeq.
//
// A Set is not safe for concurrent mutation; see the package
// documentation for the concurrency contract.
type Set struct {
	idx     *blockindex.Index
	count   int
	gap     int
	pool    *wordpool.Pool
	logger  *Logger
	metrics MetricsCollector
	obs     *setObserver
}

// New creates an empty Set.
func New(opts ...Option) *Set {
	o := options{
		sparseGap: DefaultSparseGap,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	var alloc block.Allocator = block.HeapAllocator{}
	if o.pool != nil {
		alloc = poolAllocator{pool: o.pool}
	}

	s := &Set{
		gap:     o.sparseGap,
		pool:    o.pool,
		logger:  o.logger,
		metrics: o.metrics,
	}
	s.obs = &setObserver{logger: o.logger}
	s.idx = blockindex.New(o.sparseGap, o.capacityHint, alloc, s.obs)
	return s
}

// Add inserts v and reports whether it was newly added.
func (s *Set) Add(v int) bool {
	added := s.add(v)
	s.metrics.RecordAdd(added)
	return added
}

func (s *Set) add(v int) bool {
	pos := s.idx.LocateOrCreate(v)
	added := s.idx.At(pos).Set(v)
	if added {
		s.count++
	}
	return added
}

// AddRange inserts every value in [lo, hi) and returns the number of
// values newly added.
func (s *Set) AddRange(lo, hi int) int {
	n := 0
	for v := lo; v < hi; v++ {
		if s.add(v) {
			n++
		}
	}
	return n
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	pos, ok := s.idx.LocateForRead(v)
	if !ok {
		return false
	}
	return s.idx.At(pos).Contains(v)
}

// Remove deletes v and reports whether it was present.
func (s *Set) Remove(v int) bool {
	pos, ok := s.idx.LocateForRead(v)
	if !ok {
		s.metrics.RecordRemove(false)
		return false
	}
	removed := s.idx.At(pos).Clear(v)
	if removed {
		s.count--
	}
	s.metrics.RecordRemove(removed)
	return removed
}

// Count returns the number of values in the set.
func (s *Set) Count() int { return s.count }

// Compact reclaims dead space: all-zero leading and trailing words are
// trimmed from every block and fully empty blocks are dropped. Logical
// membership never changes. Reports whether anything changed.
func (s *Set) Compact() bool {
	var changed bool
	if s.count == 0 {
		changed = s.idx.Len() > 0
		s.idx.Reset()
	} else {
		changed = s.idx.Compact()
	}
	s.logger.LogCompact(changed, s.idx.Len(), s.idx.WordCount())
	s.metrics.RecordCompact(changed)
	return changed
}

// Clear removes all values. Block storage is released; a subsequent Add
// behaves as on a fresh set.
func (s *Set) Clear() {
	s.idx.Reset()
	s.count = 0
}

// Min returns the smallest value in the set.
func (s *Set) Min() (int, bool) { return s.idx.First() }

// Max returns the largest value in the set.
func (s *Set) Max() (int, bool) { return s.idx.Last() }

// UnionWith adds every value of other to s.
func (s *Set) UnionWith(other *Set) {
	for v := range other.All() {
		s.add(v)
	}
}

// IntersectWith removes every value of s that is not in other.
func (s *Set) IntersectWith(other *Set) {
	var drop []int
	for v := range s.All() {
		if !other.Contains(v) {
			drop = append(drop, v)
		}
	}
	for _, v := range drop {
		s.Remove(v)
	}
}

// DifferenceWith removes every value of other from s.
func (s *Set) DifferenceWith(other *Set) {
	for v := range other.All() {
		s.Remove(v)
	}
}

// Equal reports whether both sets contain exactly the same values.
func (s *Set) Equal(other *Set) bool {
	if s.count != other.count {
		return false
	}
	a, b := s.Iterator(), other.Iterator()
	for {
		va, oka := a.Next()
		vb, okb := b.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if va != vb {
			return false
		}
	}
}

// Clone returns an independent copy of the set, keeping its construction
// parameters (gap, pool, logger, metrics).
func (s *Set) Clone() *Set {
	opts := []Option{
		WithSparseGap(s.gap),
		WithCapacityHint(s.idx.Len()),
		WithLogger(s.logger),
		WithMetricsCollector(s.metrics),
	}
	if s.pool != nil {
		opts = append(opts, WithBufferPool(s.pool))
	}
	c := New(opts...)
	for v := range s.All() {
		c.add(v)
	}
	return c
}

// String renders the values in ascending order, for diagnostics.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// poolAllocator adapts a wordpool.Pool to the block allocator contract.
// Requests beyond the pool maximum fall back to the heap; oversized
// buffers handed back are dropped by the pool for the GC.
type poolAllocator struct {
	pool *wordpool.Pool
}

func (a poolAllocator) AllocWords(n int) []uint64 {
	buf, err := a.pool.Lease(n)
	if err != nil {
		return make([]uint64, n)
	}
	return buf
}

func (a poolAllocator) FreeWords(buf []uint64) {
	a.pool.Return(buf)
}

// setObserver bridges index structural events to the logger and the
// structural counters reported by Stats.
type setObserver struct {
	logger  *Logger
	splits  uint64
	rebases uint64
	grows   uint64
}

func (o *setObserver) BlockCreated(base int) {
	o.splits++
	o.logger.LogBlockCreated(base)
}

func (o *setObserver) BlockRebased(oldBase, newBase int) {
	o.rebases++
	o.logger.LogBlockRebased(oldBase, newBase)
}

func (o *setObserver) BlockGrown(base, words int) {
	o.grows++
	o.logger.LogBlockGrown(base, words)
}
