package wordpool

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// DefaultMaxWords is the largest leasable buffer length.
	DefaultMaxWords = 1024

	// DefaultChunkWords is the slab chunk size buffers are carved from
	// (16384 words = 128 KiB).
	DefaultChunkWords = 16384
)

// ErrBufferTooLarge indicates a lease request beyond the pool's maximum
// buffer length. It is a usage error, not a transient condition.
type ErrBufferTooLarge struct {
	Requested int
	Max       int
}

func (e *ErrBufferTooLarge) Error() string {
	return fmt.Sprintf("wordpool: requested %d words, maximum is %d", e.Requested, e.Max)
}

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	Leases          uint64 // successful Lease calls
	Returns         uint64 // accepted Return calls
	Hits            uint64 // leases served from a free list
	ChunksAllocated uint64 // slab chunks requested from the heap
	WordsCarved     uint64 // words handed out from slabs (historical)
}

type atomicStats struct {
	leases  atomic.Uint64
	returns atomic.Uint64
	hits    atomic.Uint64
	chunks  atomic.Uint64
	carved  atomic.Uint64
}

// node is a single free-list entry. Nodes are allocated fresh on every
// push; reusing them would reintroduce the ABA hazard the GC otherwise
// rules out.
type node struct {
	buf  []uint64
	next *node
}

// freeList is a Treiber stack of same-length buffers.
type freeList struct {
	head atomic.Pointer[node]
}

func (l *freeList) push(buf []uint64) {
	n := &node{buf: buf}
	for {
		old := l.head.Load()
		n.next = old
		if l.head.CompareAndSwap(old, n) {
			return
		}
	}
}

func (l *freeList) pop() []uint64 {
	for {
		old := l.head.Load()
		if old == nil {
			return nil
		}
		if l.head.CompareAndSwap(old, old.next) {
			return old.buf
		}
	}
}

// Pool hands out word buffers of bounded length for block storage.
type Pool struct {
	maxWords   int
	chunkWords int

	// buckets[n] holds returned buffers of exactly n words.
	buckets []freeList

	// mu serializes slab carving so fresh chunks are filled contiguously.
	mu   sync.Mutex
	slab []uint64

	stats atomicStats
}

// Option configures a Pool.
type Option func(*Pool)

// WithMaxWords sets the largest leasable buffer length.
func WithMaxWords(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.maxWords = n
		}
	}
}

// WithChunkWords sets the slab chunk size. It is raised to the maximum
// buffer length if configured smaller.
func WithChunkWords(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.chunkWords = n
		}
	}
}

// New creates a Pool.
func New(opts ...Option) *Pool {
	p := &Pool{
		maxWords:   DefaultMaxWords,
		chunkWords: DefaultChunkWords,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.chunkWords < p.maxWords {
		p.chunkWords = p.maxWords
	}
	p.buckets = make([]freeList, p.maxWords+1)
	return p
}

// MaxWords returns the largest leasable buffer length.
func (p *Pool) MaxWords() int { return p.maxWords }

// Lease returns a zeroed buffer of exactly n words. The buffer belongs to
// the caller until passed back through Return.
func (p *Pool) Lease(n int) ([]uint64, error) {
	if n < 1 || n > p.maxWords {
		return nil, &ErrBufferTooLarge{Requested: n, Max: p.maxWords}
	}

	if buf := p.buckets[n].pop(); buf != nil {
		p.stats.hits.Add(1)
		p.stats.leases.Add(1)
		return buf, nil
	}

	p.mu.Lock()
	if len(p.slab) < n {
		p.slab = make([]uint64, p.chunkWords)
		p.stats.chunks.Add(1)
	}
	buf := p.slab[:n:n]
	p.slab = p.slab[n:]
	p.mu.Unlock()

	p.stats.carved.Add(uint64(n))
	p.stats.leases.Add(1)
	return buf, nil
}

// Return gives a leased buffer back for reuse. Contents are cleared
// before the buffer becomes leasable, so no later lease can observe the
// previous owner's bits. Buffers longer than the pool maximum (allocated
// elsewhere) are dropped for the GC to reclaim.
func (p *Pool) Return(buf []uint64) {
	n := len(buf)
	if n < 1 || n > p.maxWords {
		return
	}
	clear(buf)
	p.buckets[n].push(buf)
	p.stats.returns.Add(1)
}

// Stats returns a snapshot of pool activity.
func (p *Pool) Stats() Stats {
	return Stats{
		Leases:          p.stats.leases.Load(),
		Returns:         p.stats.returns.Load(),
		Hits:            p.stats.hits.Load(),
		ChunksAllocated: p.stats.chunks.Load(),
		WordsCarved:     p.stats.carved.Load(),
	}
}
