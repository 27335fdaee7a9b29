package block

import "math/bits"

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64
	wordMask = WordBits - 1
)

// AlignDown returns v aligned down to a word boundary. Bitwise AND-NOT
// floors correctly for negative values on two's complement.
func AlignDown(v int) int { return v &^ wordMask }

// Allocator provides word buffers for block construction and growth.
// Returned slices must be zeroed. FreeWords gives a buffer back once no
// block references it; implementations may recycle it.
type Allocator interface {
	AllocWords(n int) []uint64
	FreeWords(buf []uint64)
}

// HeapAllocator allocates directly from the Go heap and never recycles.
type HeapAllocator struct{}

func (HeapAllocator) AllocWords(n int) []uint64 { return make([]uint64, n) }
func (HeapAllocator) FreeWords([]uint64)        {}

// Block is a word-aligned bit buffer covering a bounded integer range.
type Block struct {
	off   int
	words []uint64
}

// New creates a block starting at off with the given backing words.
func New(off int, words []uint64) Block {
	if off&wordMask != 0 {
		panic("sparseset: block base offset not word aligned")
	}
	return Block{off: off, words: words}
}

// Base returns the smallest value this block can represent.
func (b Block) Base() int { return b.off }

// MaxPossible returns the largest value this block can represent.
func (b Block) MaxPossible() int { return b.off + len(b.words)*WordBits - 1 }

// WordCount returns the number of backing words.
func (b Block) WordCount() int { return len(b.words) }

// Covers reports whether v falls inside the representable range.
func (b Block) Covers(v int) bool { return v >= b.off && v <= b.MaxPossible() }

// Contains reports whether the bit for v is set. Values outside the
// representable range are absent by definition.
func (b Block) Contains(v int) bool {
	if !b.Covers(v) {
		return false
	}
	rel := uint(v - b.off)
	return b.words[rel/WordBits]&(1<<(rel&wordMask)) != 0
}

// Set sets the bit for v and reports whether it transitioned from 0 to 1.
// The caller guarantees v is within the representable range; growing the
// block first is the index's responsibility.
func (b Block) Set(v int) bool {
	rel := uint(v - b.off)
	w := rel / WordBits
	mask := uint64(1) << (rel & wordMask)
	if b.words[w]&mask != 0 {
		return false
	}
	b.words[w] |= mask
	return true
}

// Clear clears the bit for v and reports whether it transitioned from 1
// to 0. Out-of-range values are a no-op.
func (b Block) Clear(v int) bool {
	if !b.Covers(v) {
		return false
	}
	rel := uint(v - b.off)
	w := rel / WordBits
	mask := uint64(1) << (rel & wordMask)
	if b.words[w]&mask == 0 {
		return false
	}
	b.words[w] &^= mask
	return true
}

// Count returns the number of set bits.
func (b Block) Count() int {
	n := 0
	for _, w := range b.words {
		if w != 0 {
			n += bits.OnesCount64(w)
		}
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b Block) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// First returns the smallest set value.
func (b Block) First() (int, bool) {
	for i, w := range b.words {
		if w != 0 {
			return b.off + i*WordBits + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// Last returns the largest set value.
func (b Block) Last() (int, bool) {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return b.off + i*WordBits + bits.Len64(w) - 1, true
		}
	}
	return 0, false
}

// Rebase shifts the block's range down so that it covers newBase (aligned
// down to a word boundary). Every stored value keeps its identity: a bit at
// relative position p lands at p + shift. The old buffer is released to the
// allocator.
func (b Block) Rebase(newBase int, a Allocator) Block {
	target := AlignDown(newBase)
	if target >= b.off {
		panic("sparseset: rebase target not below current base")
	}
	shift := b.off - target
	wordShift := shift / WordBits
	bitShift := uint(shift & wordMask)

	if bitShift == 0 {
		words := a.AllocWords(len(b.words) + wordShift)
		copy(words[wordShift:], b.words)
		a.FreeWords(b.words)
		return Block{off: target, words: words}
	}

	words := shiftWords(b.words, wordShift, bitShift, a)
	a.FreeWords(b.words)
	return Block{off: target, words: words}
}

// shiftWords returns a fresh buffer holding src shifted left by
// wordShift whole words plus bitShift bits, carrying overflow into the
// next higher word. One extra trailing word is allocated when the top
// word's high bits would otherwise be lost.
func shiftWords(src []uint64, wordShift int, bitShift uint, a Allocator) []uint64 {
	n := len(src) + wordShift
	if len(src) > 0 && src[len(src)-1]>>(WordBits-bitShift) != 0 {
		n++
	}
	words := a.AllocWords(n)
	var carry uint64
	for i, w := range src {
		words[wordShift+i] = w<<bitShift | carry
		carry = w >> (WordBits - bitShift)
	}
	if carry != 0 {
		words[wordShift+len(src)] = carry
	}
	return words
}

// Grow expands the backing buffer to at least required words, doubling
// the current capacity but never exceeding maxWords (the ceiling imposed
// by a neighboring block). The index's clamping guarantees required <=
// maxWords; anything else is a bug, not bad input.
func (b Block) Grow(required, maxWords int, a Allocator) Block {
	if required > maxWords {
		panic("sparseset: block growth past neighbor boundary")
	}
	if required <= len(b.words) {
		return b
	}
	newCap := len(b.words) * 2
	if newCap > maxWords {
		newCap = maxWords
	}
	if newCap < required {
		newCap = required
	}
	words := a.AllocWords(newCap)
	copy(words, b.words)
	a.FreeWords(b.words)
	return Block{off: b.off, words: words}
}

// Trim drops all-zero leading and trailing words, advancing the base
// offset past trimmed leading words. It reports whether the block changed.
// A block with no set bits trims to the zero Block.
func (b Block) Trim(a Allocator) (Block, bool) {
	lead := 0
	for lead < len(b.words) && b.words[lead] == 0 {
		lead++
	}
	if lead == len(b.words) {
		a.FreeWords(b.words)
		return Block{}, len(b.words) > 0
	}
	tail := len(b.words)
	for b.words[tail-1] == 0 {
		tail--
	}
	if lead == 0 && tail == len(b.words) {
		return b, false
	}
	words := a.AllocWords(tail - lead)
	copy(words, b.words[lead:tail])
	a.FreeWords(b.words)
	return Block{off: b.off + lead*WordBits, words: words}, true
}

// Release gives the backing buffer back to the allocator. The block must
// not be used afterwards.
func (b Block) Release(a Allocator) {
	a.FreeWords(b.words)
}

// Cursor iterates the set bits of a block in ascending order. It works on
// a word-by-word copy, so advancing never mutates the stored words. A
// fresh cursor restarts from the lowest bit.
type Cursor struct {
	b    Block
	word int
	cur  uint64
}

// Cursor returns an iteration cursor positioned before the first set bit.
func (b Block) Cursor() Cursor {
	return Cursor{b: b, word: -1}
}

// Next returns the next set value in ascending order.
func (c *Cursor) Next() (int, bool) {
	for c.cur == 0 {
		c.word++
		if c.word >= len(c.b.words) {
			return 0, false
		}
		c.cur = c.b.words[c.word]
	}
	tz := bits.TrailingZeros64(c.cur)
	c.cur &= c.cur - 1
	return c.b.off + c.word*WordBits + tz, true
}
