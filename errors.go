package sparseset

import "errors"

var (
	// ErrNilSource is returned when constructing a set from a nil source
	// sequence. No partial state is created.
	ErrNilSource = errors.New("sparseset: nil source sequence")
)

// Buffer-capacity errors surface from the wordpool package as
// *wordpool.ErrBufferTooLarge; the set itself never requests pooled
// buffers beyond the pool's maximum and falls back to the heap for
// oversized blocks instead.
