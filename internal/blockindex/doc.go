// Package blockindex maintains the ordered collection of non-overlapping
// blocks that together represent a sparse set's value space.
//
// The index owns every structural decision: which block covers a value,
// whether a block grows in place, rebases downward, or a fresh block is
// split off, and how dead space is reclaimed. Blocks are kept strictly
// ascending by base offset and never overlap; every growth computation is
// clamped against the next block's territory.
//
// Positions into the backing array serve as handles. They are stable only
// until the next structural operation, matching the single-writer
// discipline of the owning set.
package blockindex
