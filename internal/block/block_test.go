package block

import "testing"

var heap = HeapAllocator{}

func newBlock(off, words int) Block {
	return New(off, heap.AllocWords(words))
}

func TestAlignDown(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{1, 0},
		{63, 0},
		{64, 64},
		{100, 64},
		{25000, 24960},
		{-1, -64},
		{-64, -64},
		{-65, -128},
	}
	for _, c := range cases {
		if got := AlignDown(c.in); got != c.want {
			t.Errorf("AlignDown(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBlock_SetClearContains(t *testing.T) {
	b := newBlock(64, 2) // covers 64..191

	if b.Contains(100) {
		t.Errorf("expected 100 absent in fresh block")
	}
	if !b.Set(100) {
		t.Errorf("expected first Set(100) to report a transition")
	}
	if b.Set(100) {
		t.Errorf("expected second Set(100) to report no transition")
	}
	if !b.Contains(100) {
		t.Errorf("expected 100 present")
	}
	if b.Contains(99) {
		t.Errorf("expected 99 absent")
	}
	if b.Contains(63) || b.Contains(192) {
		t.Errorf("out-of-range values must read as absent")
	}

	if !b.Clear(100) {
		t.Errorf("expected Clear(100) to report a transition")
	}
	if b.Clear(100) {
		t.Errorf("expected second Clear(100) to report no transition")
	}
	if b.Clear(5000) {
		t.Errorf("out-of-range Clear must be a no-op")
	}
}

func TestBlock_Bounds(t *testing.T) {
	b := newBlock(128, 3)
	if b.Base() != 128 {
		t.Errorf("base = %d, want 128", b.Base())
	}
	if b.MaxPossible() != 128+3*64-1 {
		t.Errorf("max = %d, want %d", b.MaxPossible(), 128+3*64-1)
	}

	if !b.IsEmpty() {
		t.Errorf("fresh block must be empty")
	}

	b.Set(128)
	b.Set(b.MaxPossible())
	if b.IsEmpty() {
		t.Errorf("block with bits must not be empty")
	}
	if !b.Contains(128) || !b.Contains(b.MaxPossible()) {
		t.Errorf("boundary bits lost")
	}
	if b.Count() != 2 {
		t.Errorf("count = %d, want 2", b.Count())
	}
}

func TestBlock_NegativeRange(t *testing.T) {
	b := newBlock(-128, 2) // covers -128..-1
	if !b.Set(-100) {
		t.Errorf("expected Set(-100) to transition")
	}
	if !b.Contains(-100) || b.Contains(-101) {
		t.Errorf("negative membership wrong")
	}
	if v, ok := b.First(); !ok || v != -100 {
		t.Errorf("First = (%d, %v), want (-100, true)", v, ok)
	}
}

func TestBlock_Rebase_WordMultiple(t *testing.T) {
	b := newBlock(24960, 1)
	b.Set(25000)

	b = b.Rebase(24900, heap)
	if b.Base() != 24896 {
		t.Errorf("base after rebase = %d, want 24896", b.Base())
	}
	if b.WordCount() != 2 {
		t.Errorf("words after rebase = %d, want 2", b.WordCount())
	}
	if !b.Contains(25000) {
		t.Errorf("rebase lost value 25000")
	}
	if b.Count() != 1 {
		t.Errorf("rebase changed count: %d", b.Count())
	}
}

func TestBlock_Rebase_PanicsUpward(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for rebase to a non-lower base")
		}
	}()
	b := newBlock(64, 1)
	b.Rebase(200, heap)
}

func TestShiftWords_SubWordCarry(t *testing.T) {
	// The exported Rebase only ever shifts by word multiples (both bases
	// are aligned), but the carry path must still be exact.
	// Bit 63 of word 0 carries into bit 0 of word 1.
	src := []uint64{1 << 63, 0b1011}
	out := shiftWords(src, 0, 1, heap)
	if len(out) != 2 {
		t.Fatalf("unexpected length %d", len(out))
	}
	if out[0] != 0 || out[1] != 0b10111 {
		t.Errorf("shift result wrong: %b %b", out[0], out[1])
	}

	// A set bit in the top word's high range forces a carry-out word.
	out = shiftWords([]uint64{0, 1 << 63}, 0, 1, heap)
	if len(out) != 3 || out[2] != 1 {
		t.Errorf("expected carry into a fresh top word, got %#v", out)
	}

	out = shiftWords([]uint64{0b101}, 1, 4, heap)
	if len(out) != 2 || out[0] != 0 || out[1] != 0b1010000 {
		t.Errorf("word+bit shift wrong: %#v", out)
	}
}

func TestShiftWords_AllPositionsRoundTrip(t *testing.T) {
	for shift := uint(1); shift < 64; shift++ {
		src := []uint64{0xDEADBEEFCAFEF00D, 0x0123456789ABCDEF}
		out := shiftWords(src, 0, shift, heap)
		for pos := 0; pos < 128; pos++ {
			before := src[pos/64]&(1<<(pos%64)) != 0
			np := pos + int(shift)
			if np >= len(out)*64 {
				if before {
					t.Fatalf("shift %d: bit %d shifted past allocated words", shift, pos)
				}
				continue
			}
			after := out[np/64]&(1<<(np%64)) != 0
			if before != after {
				t.Fatalf("shift %d: bit %d: before=%v after=%v", shift, pos, before, after)
			}
		}
		// No bit spuriously introduced at the bottom.
		if out[0]&((1<<shift)-1) != 0 {
			t.Fatalf("shift %d introduced low bits", shift)
		}
	}
}

func TestBlock_Grow(t *testing.T) {
	b := newBlock(64, 1)
	b.Set(100)

	b = b.Grow(5, 100, heap)
	if b.WordCount() != 5 {
		t.Errorf("grow to required past double: words = %d, want 5", b.WordCount())
	}
	if !b.Contains(100) {
		t.Errorf("grow lost existing bit")
	}

	b = b.Grow(7, 100, heap)
	if b.WordCount() != 10 {
		t.Errorf("doubling growth: words = %d, want 10", b.WordCount())
	}

	b = b.Grow(11, 12, heap)
	if b.WordCount() != 12 {
		t.Errorf("clamped growth: words = %d, want 12", b.WordCount())
	}

	// Growing to a size already covered is a no-op.
	before := b.WordCount()
	b = b.Grow(3, 100, heap)
	if b.WordCount() != before {
		t.Errorf("no-op grow changed capacity")
	}
}

func TestBlock_Grow_PanicsPastCeiling(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when required exceeds the ceiling")
		}
	}()
	b := newBlock(0, 1)
	b.Grow(10, 5, heap)
}

func TestBlock_Trim(t *testing.T) {
	b := newBlock(64, 10) // 64..703
	b.Set(350)

	b, changed := b.Trim(heap)
	if !changed {
		t.Fatalf("expected trim to change the block")
	}
	if b.Base() != 320 || b.WordCount() != 1 {
		t.Errorf("trimmed to base=%d words=%d, want base=320 words=1", b.Base(), b.WordCount())
	}
	if !b.Contains(350) {
		t.Errorf("trim lost value")
	}

	_, changed = b.Trim(heap)
	if changed {
		t.Errorf("second trim must be a no-op")
	}
}

func TestBlock_Trim_Empty(t *testing.T) {
	b := newBlock(0, 4)
	b, changed := b.Trim(heap)
	if !changed {
		t.Errorf("expected all-zero block to trim away")
	}
	if b.WordCount() != 0 {
		t.Errorf("expected zero block, got %d words", b.WordCount())
	}
}

func TestCursor(t *testing.T) {
	b := newBlock(64, 3)
	want := []int{64, 100, 127, 128, 200}
	for _, v := range want {
		b.Set(v)
	}

	var got []int
	c := b.Cursor()
	for {
		v, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("cursor yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cursor yielded %v, want %v", got, want)
		}
	}

	// Cursors are restartable and never mutate the block.
	c = b.Cursor()
	if v, ok := c.Next(); !ok || v != 64 {
		t.Errorf("fresh cursor did not restart at 64")
	}
	if b.Count() != len(want) {
		t.Errorf("cursor mutated the block")
	}
}

func TestCursor_Empty(t *testing.T) {
	c := newBlock(0, 2).Cursor()
	if _, ok := c.Next(); ok {
		t.Errorf("empty block cursor must be exhausted")
	}
}
