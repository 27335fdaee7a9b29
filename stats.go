package sparseset

// Stats is a point-in-time snapshot of a set's internal shape.
type Stats struct {
	Count  int // number of values in the set
	Blocks int // number of blocks in the index
	Words  int // total backing words across all blocks
	Bytes  int // backing word storage in bytes

	// Structural event counters since construction.
	Splits  uint64 // blocks created
	Rebases uint64 // downward rebases
	Grows   uint64 // in-place capacity expansions
}

// Stats returns a snapshot of the set's internal shape. Useful for
// judging when a Compact call is worthwhile.
func (s *Set) Stats() Stats {
	words := s.idx.WordCount()
	return Stats{
		Count:   s.count,
		Blocks:  s.idx.Len(),
		Words:   words,
		Bytes:   words * 8,
		Splits:  s.obs.splits,
		Rebases: s.obs.rebases,
		Grows:   s.obs.grows,
	}
}
