package sparseset

import (
	"iter"

	"github.com/hupe1980/sparseset/internal/block"
)

// Iterator walks the set's values in ascending order. It holds a
// (block position, word, remaining bits) cursor advanced on each Next
// call; a fresh Iterator restarts from the smallest value.
//
// Mutating the set during iteration is unsupported and may yield
// inconsistent results.
type Iterator struct {
	s   *Set
	pos int
	cur block.Cursor
}

// Iterator returns a fresh iterator positioned before the smallest value.
func (s *Set) Iterator() *Iterator {
	return &Iterator{s: s, pos: -1}
}

// Next returns the next value in ascending order.
func (it *Iterator) Next() (int, bool) {
	for {
		if it.pos >= 0 && it.pos < it.s.idx.Len() {
			if v, ok := it.cur.Next(); ok {
				return v, true
			}
		}
		it.pos++
		if it.pos >= it.s.idx.Len() {
			return 0, false
		}
		it.cur = it.s.idx.CursorAt(it.pos)
	}
}

// All returns a range-over-func view of the set in ascending order with
// no duplicates. Each call re-scans from the start.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns the set's contents as a sorted slice.
func (s *Set) Values() []int {
	out := make([]int, 0, s.count)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
