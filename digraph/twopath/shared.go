package twopath

import "github.com/katalvlaran/ergmcore/digraph"

// applyToggle derives the cell updates a single arc toggle induces,
// shared by both the Dense and Sparse backends so the maintenance
// formula exists in exactly one place.
//
// Diagonal cells (a == b) are never written: no change-statistic formula
// queries a two-path count between a node and itself, since every query
// site works over a candidate dyad's two distinct endpoints or a
// triangle's three distinct nodes.
//
// Derivation (g already reflects the toggle: for added==true the arc
// i->j is already inserted; for added==false it has already been
// removed, consistent with digraph.Graph.InsertArc/RemoveArc calling
// TwoPathIndex.Update after mutating adjacency):
//
//   - Out(x,z)   = |OutNeighbors(x) ∩ InNeighbors(z)|. The toggle adds or
//     removes exactly one witness k=i for every x with x->i (Out(x,j)),
//     and exactly one witness k=j for every z with j->z (Out(i,z)).
//   - In(x,z)    = |InNeighbors(x) ∩ InNeighbors(z)|, symmetric in x,z.
//     The toggle changes witness k=i for every x with i->x (In(x,j) and
//     its mirror In(j,x)).
//   - Mixed(x,z) = |OutNeighbors(x) ∩ OutNeighbors(z)|, symmetric in x,z.
//     The toggle changes witness k=j for every z with z->j (Mixed(i,z)
//     and its mirror Mixed(z,i)).
func applyToggle(g *digraph.Graph, i, j int32, delta int64, add func(rel Relation, a, b int32, d int64)) {
	for _, x := range g.InNeighbors(i) {
		if x == j {
			continue
		}
		add(Out, x, j, delta)
	}
	for _, z := range g.OutNeighbors(j) {
		if z == i {
			continue
		}
		add(Out, i, z, delta)
	}
	for _, x := range g.OutNeighbors(i) {
		if x == j {
			continue
		}
		add(In, x, j, delta)
		add(In, j, x, delta)
	}
	for _, z := range g.InNeighbors(j) {
		if z == i {
			continue
		}
		add(Mixed, i, z, delta)
		add(Mixed, z, i, delta)
	}
}

// recomputeCell is the brute-force ground truth for one (relation,i,j)
// cell, used by tests to assert the incrementally maintained index never
// drifts.
func recomputeCell(g *digraph.Graph, rel Relation, i, j int32) int64 {
	var count int64
	switch rel {
	case Out:
		for _, k := range g.OutNeighbors(i) {
			if g.IsArc(k, j) {
				count++
			}
		}
	case In:
		for _, k := range g.InNeighbors(i) {
			if g.IsArc(k, j) {
				count++
			}
		}
	case Mixed:
		for _, k := range g.OutNeighbors(i) {
			if contains(g.OutNeighbors(j), k) {
				count++
			}
		}
	}
	return count
}

func contains(s []int32, v int32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
