// Package sparseset provides a memory-efficient set container for
// integers that exploits spatial locality.
//
// When stored values cluster into narrow numeric ranges, membership is
// represented as bits in one or more word-aligned buffers ("blocks")
// instead of one slot per element, giving large memory savings and
// competitive speed versus a generic hashed set. Values that fall close
// to an existing block extend or rebase that block; values beyond the
// sparse-gap threshold split off a new block.
//
// Features:
//
//   - Word-aligned bit blocks with exact rebase/growth semantics
//   - Tunable sparse-gap heuristic (default 640 values = 10 words)
//   - Compaction that trims dead words and drops empty blocks
//   - Ascending, duplicate-free iteration (explicit Iterator or iter.Seq)
//   - Optional buffer pooling to cut allocation churn (wordpool package)
//   - Structured logging hooks and pluggable metrics collection
//
// # Quick start
//
//	s := sparseset.New()
//	s.Add(100)
//	s.Add(25000)
//	s.Contains(100) // true
//	for v := range s.All() {
//	    fmt.Println(v)
//	}
//
// Construction from an existing sequence:
//
//	s := sparseset.FromValues(3, 1, 4, 1, 5)
//
// With a shared buffer pool and debug logging:
//
//	pool := wordpool.New()
//	s := sparseset.New(
//	    sparseset.WithBufferPool(pool),
//	    sparseset.WithLogger(sparseset.NewTextLogger(slog.LevelDebug)),
//	)
//
// # Concurrency
//
// A Set follows the single-writer, multiple-idle-reader discipline of
// ordinary in-memory collections: no internal synchronization, callers
// needing concurrent mutation must serialize externally. The wordpool
// package is the one component designed for concurrent access.
package sparseset
