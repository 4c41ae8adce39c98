package twopath

import "github.com/katalvlaran/ergmcore/digraph"

// Sparse is the hash-map backend: one map per relation keyed on the
// packed ordered pair; an absent key means count zero, and entries are
// purged the moment their count returns to zero so memory tracks the
// number of *nonzero* cells rather than N².
type Sparse struct {
	planes [numRelations]map[uint64]int64
}

// NewSparse allocates an empty sparse two-path index.
func NewSparse() *Sparse {
	s := &Sparse{}
	for r := range s.planes {
		s.planes[r] = make(map[uint64]int64)
	}
	return s
}

// Query returns the current count for (rel, i, j), or 0 if the cell was
// never written or has returned to zero.
func (s *Sparse) Query(rel Relation, i, j int32) int64 {
	return s.planes[rel][pack(i, j)]
}

func (s *Sparse) add(rel Relation, i, j int32, delta int64) {
	key := pack(i, j)
	plane := s.planes[rel]
	v := plane[key] + delta
	if v == 0 {
		delete(plane, key)
	} else {
		plane[key] = v
	}
}

// Update applies the incremental maintenance rule for one arc toggle.
func (s *Sparse) Update(g *digraph.Graph, i, j int32, added bool) {
	delta := int64(1)
	if !added {
		delta = -1
	}
	applyToggle(g, i, j, delta, s.add)
}

// Rebuild recomputes every nonzero cell from scratch. Used by tests; not
// part of the hot path. Only pairs joined through some intermediate
// node k can be nonzero, so this scans, for each k, the pairs formed
// from k's in- and out-neighbors rather than all N².
func (s *Sparse) Rebuild(g *digraph.Graph) {
	for r := range s.planes {
		s.planes[r] = make(map[uint64]int64)
	}
	seen := make(map[[2]int32]struct{})
	candidate := func(i, j int32) {
		if i == j {
			return
		}
		seen[[2]int32{i, j}] = struct{}{}
	}
	for k := int32(0); k < g.N(); k++ {
		in, out := g.InNeighbors(k), g.OutNeighbors(k)
		for _, x := range in {
			for _, z := range out {
				candidate(x, z) // Out: x->k->z
			}
			for _, z := range in {
				candidate(x, z) // Mixed: x->k and z->k
			}
		}
		for _, x := range out {
			for _, z := range out {
				candidate(x, z) // In: k->x and k->z
			}
		}
	}
	for pairKey := range seen {
		i, j := pairKey[0], pairKey[1]
		for _, rel := range []Relation{Out, In, Mixed} {
			if v := recomputeCell(g, rel, i, j); v != 0 {
				s.planes[rel][pack(i, j)] = v
			}
		}
	}
}
