// Package wordpool provides a process-wide reuse pool for the word
// buffers backing sparse-set blocks.
//
// Buffers are bucketed by exact length. Fresh memory is carved from large
// slab chunks under a single mutex so the backing allocation stays
// contiguous; returns and re-leases go through per-length lock-free free
// lists. A returned buffer is zeroed before it becomes leasable again, so
// a new lease can never observe another owner's bit pattern.
//
// The pool is safe for concurrent use. Requests larger than the
// configured maximum are a usage error and fail loudly rather than
// silently falling back to the heap.
package wordpool
