// Package block implements the word-aligned bit buffer underlying a sparse
// set. A Block covers one contiguous integer range: bit i of words[w]
// represents the value off + w*64 + i.
//
// Blocks are value types. Operations that change a block's shape (Rebase,
// Grow, Trim) are pure functions returning the updated block; the owning
// index assigns the result back into its slot. Only Set and Clear mutate a
// block in place, and they never change its shape.
//
// Buffers come from an Allocator so that an owning set can plug in a
// recycling pool. Allocators must hand out zeroed slices.
package block
