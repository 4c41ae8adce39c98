// Package twopath implements the two-path accelerator: for every ordered
// node pair (i,j), the count of two-paths between them under one of
// three relations (Mixed, In, Out). It is a pure cache — a backend
// recomputed from scratch must agree with the incrementally maintained
// counts — with two interchangeable backends (Dense, Sparse) behind a
// common digraph.TwoPathIndex interface so the change-statistic library
// never knows which one is active (runtime strategy selection).
//
// Three relations exist, each counting intermediate nodes k between an
// ordered pair (i,j):
//
//	Out:   i->k and k->j   (a genuine directed two-path i to j)
//	In:    k->i and k->j   (i and j share an in-neighbor)
//	Mixed: i->k and j->k   (i and j share an out-neighbor)
package twopath

import "github.com/katalvlaran/ergmcore/digraph"

// Relation identifies which of the three two-path orientations a query
// or update targets.
type Relation uint8

const (
	// Out counts k with i->k and k->j (a directed two-path i to j).
	Out Relation = iota
	// In counts k with k->i and k->j (shared in-neighbor).
	In
	// Mixed counts k with i->k and j->k (shared out-neighbor).
	Mixed

	numRelations = 3
)

// Index is the query half of the accelerator; digraph.TwoPathIndex (the
// maintenance half) is satisfied by the same concrete types.
type Index interface {
	digraph.TwoPathIndex
	// Query returns the current two-path count for (relation, i, j).
	Query(rel Relation, i, j int32) int64
}

// pack combines an ordered pair into a single 64-bit key for hash-backed
// backends, matching digraph's own arc-packing convention.
func pack(i, j int32) uint64 {
	return uint64(uint32(i))<<32 | uint64(uint32(j))
}
