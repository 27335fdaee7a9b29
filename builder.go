package sparseset

import "iter"

// FromValues creates a Set containing the given values.
func FromValues(values ...int) *Set {
	s := New()
	for _, v := range values {
		s.add(v)
	}
	return s
}

// FromSeq creates a Set from an arbitrary integer sequence. A nil
// sequence is an invalid argument: ErrNilSource is returned and no
// partial state is created.
func FromSeq(seq iter.Seq[int], opts ...Option) (*Set, error) {
	if seq == nil {
		return nil, ErrNilSource
	}
	s := New(opts...)
	for v := range seq {
		s.add(v)
	}
	return s, nil
}
