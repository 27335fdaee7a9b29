package blockindex

import (
	"math"
	"sort"

	"github.com/hupe1980/sparseset/internal/block"
)

// Observer receives structural events. All methods are optional no-ops in
// the nil observer; the index never calls them on a hot path unless the
// structure actually changed.
type Observer interface {
	BlockCreated(base int)
	BlockRebased(oldBase, newBase int)
	BlockGrown(base, words int)
}

// Index is the ordered sequence of non-overlapping blocks.
type Index struct {
	blocks []block.Block
	gap    int
	alloc  block.Allocator
	obs    Observer
}

// New creates an index. gap is the sparse-gap threshold in values; capHint
// pre-sizes the backing block array. A nil alloc falls back to the heap.
func New(gap, capHint int, alloc block.Allocator, obs Observer) *Index {
	if alloc == nil {
		alloc = block.HeapAllocator{}
	}
	var blocks []block.Block
	if capHint > 0 {
		blocks = make([]block.Block, 0, capHint)
	}
	return &Index{blocks: blocks, gap: gap, alloc: alloc, obs: obs}
}

// Len returns the number of blocks.
func (x *Index) Len() int { return len(x.blocks) }

// At returns a handle to the block at position i. The pointer is valid
// only until the next structural operation on the index.
func (x *Index) At(i int) *block.Block { return &x.blocks[i] }

// CursorAt returns an enumeration cursor over the block at position i.
func (x *Index) CursorAt(i int) block.Cursor { return x.blocks[i].Cursor() }

// LocateForRead returns the position of the block whose range covers v.
// It never creates or mutates anything.
func (x *Index) LocateForRead(v int) (int, bool) {
	i := x.search(v)
	if i < len(x.blocks) && v >= x.blocks[i].Base() {
		return i, true
	}
	return 0, false
}

// LocateOrCreate returns the position of the block owning v, growing,
// rebasing, or splitting off a block as needed. It preserves sort order
// and non-overlap unconditionally.
//
// The decision cascade, in order: an existing block already covering v
// wins; then the preceding block extends upward if v is within gap
// distance (clamped so it never reaches the next block's territory); then
// the following block rebases downward if v is within gap distance below
// it; otherwise a fresh minimal block is inserted.
func (x *Index) LocateOrCreate(v int) int {
	i := x.search(v)

	if i < len(x.blocks) && v >= x.blocks[i].Base() {
		return i
	}

	if i > 0 {
		prev := x.blocks[i-1]
		limit := satAdd(prev.MaxPossible(), x.gap)
		if i < len(x.blocks) && x.blocks[i].Base()-1 < limit {
			limit = x.blocks[i].Base() - 1
		}
		if v <= limit {
			x.blocks[i-1] = prev.Grow(wordsSpanning(prev.Base(), v), wordsSpanning(prev.Base(), limit), x.alloc)
			if x.obs != nil {
				x.obs.BlockGrown(prev.Base(), x.blocks[i-1].WordCount())
			}
			return i - 1
		}
	}

	if i < len(x.blocks) {
		next := x.blocks[i]
		// uint subtraction yields the true distance even when the
		// operands straddle zero.
		if uint(next.Base())-uint(v) <= uint(x.gap) {
			x.blocks[i] = next.Rebase(v, x.alloc)
			if x.obs != nil {
				x.obs.BlockRebased(next.Base(), x.blocks[i].Base())
			}
			return i
		}
	}

	b := block.New(block.AlignDown(v), x.alloc.AllocWords(1))
	x.insertAt(i, b)
	if x.obs != nil {
		x.obs.BlockCreated(b.Base())
	}
	return i
}

// search returns the position of the first block whose range ends at or
// above v. The sort invariant makes binary search equivalent to the
// ascending scan.
func (x *Index) search(v int) int {
	return sort.Search(len(x.blocks), func(i int) bool {
		return x.blocks[i].MaxPossible() >= v
	})
}

// insertAt writes b into slot i, shifting subsequent blocks one slot
// right. The backing array grows geometrically when full.
func (x *Index) insertAt(i int, b block.Block) {
	x.blocks = append(x.blocks, block.Block{})
	copy(x.blocks[i+1:], x.blocks[i:])
	x.blocks[i] = b
}

// Compact trims all-zero edge words from every block and drops blocks
// that turn out to be fully empty. It reports whether anything changed.
func (x *Index) Compact() bool {
	changed := false
	out := x.blocks[:0]
	for _, b := range x.blocks {
		t, ch := b.Trim(x.alloc)
		if ch {
			changed = true
		}
		if t.WordCount() == 0 {
			continue
		}
		out = append(out, t)
	}
	x.blocks = out
	return changed
}

// Reset releases every block and returns the index to its initial empty
// state.
func (x *Index) Reset() {
	for _, b := range x.blocks {
		b.Release(x.alloc)
	}
	x.blocks = x.blocks[:0]
}

// Count returns the number of set bits across all blocks.
func (x *Index) Count() int {
	n := 0
	for _, b := range x.blocks {
		n += b.Count()
	}
	return n
}

// WordCount returns the total number of backing words across all blocks.
func (x *Index) WordCount() int {
	n := 0
	for _, b := range x.blocks {
		n += b.WordCount()
	}
	return n
}

// First returns the smallest set value in the index.
func (x *Index) First() (int, bool) {
	for _, b := range x.blocks {
		if v, ok := b.First(); ok {
			return v, true
		}
	}
	return 0, false
}

// Last returns the largest set value in the index.
func (x *Index) Last() (int, bool) {
	for i := len(x.blocks) - 1; i >= 0; i-- {
		if v, ok := x.blocks[i].Last(); ok {
			return v, true
		}
	}
	return 0, false
}

// wordsSpanning returns the word count needed for a block based at base
// to cover hi inclusive. Computed through uint so the subtraction is
// exact across the full int range.
func wordsSpanning(base, hi int) int {
	diff := (uint(hi) - uint(base)) / block.WordBits
	if diff > math.MaxInt32 {
		// A span this wide could never be allocated; clamping keeps the
		// arithmetic honest without pretending it would succeed.
		return math.MaxInt32
	}
	return int(diff) + 1
}

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
