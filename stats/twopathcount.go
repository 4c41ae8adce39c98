package stats

import (
	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/digraph/twopath"
)

// twoPathCount returns the current count for (rel, i, j), consulting idx
// when present and falling back to neighbor-list intersection otherwise.
// A disabled accelerator is modeled as a nil twopath.Index rather than a
// fourth concrete type — see DESIGN.md.
func twoPathCount(g *digraph.Graph, idx twopath.Index, rel twopath.Relation, i, j int32) int64 {
	if idx != nil {
		return idx.Query(rel, i, j)
	}
	var count int64
	switch rel {
	case twopath.Out:
		for _, k := range g.OutNeighbors(i) {
			if g.IsArc(k, j) {
				count++
			}
		}
	case twopath.In:
		for _, k := range g.InNeighbors(i) {
			if g.IsArc(k, j) {
				count++
			}
		}
	case twopath.Mixed:
		for _, k := range g.OutNeighbors(i) {
			if containsNode(g.OutNeighbors(j), k) {
				count++
			}
		}
	}
	return count
}

func containsNode(s []int32, v int32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
