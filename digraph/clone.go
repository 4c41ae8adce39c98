// File: clone.go
// Role: deep copy of the mutable arc structures, a clone-then-mutate
// pattern used so a caller can snapshot a graph without disturbing the
// live one. Used by the simulation driver to persist an intermediate
// network without pausing the chain, and by tests asserting round-trip
// invariants.
package digraph

// Clone returns a deep copy of g's mutable arc structures. Attributes
// and snowball metadata are shared by reference. The two-path
// accelerator is not copied (it is meaningless without the exact same
// Graph driving it), so a clone starts with the accelerator detached.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:      g.n,
		m:      g.m,
		out:    make([][]int32, g.n),
		in:     make([][]int32, g.n),
		arcs:   make([]Arc, len(g.arcs)),
		arcPos: make(map[uint64]int32, len(g.arcPos)),
		attrs:  g.attrs,
		snow:   g.snow,
	}
	for i := range g.out {
		c.out[i] = append([]int32(nil), g.out[i]...)
		c.in[i] = append([]int32(nil), g.in[i]...)
	}
	copy(c.arcs, g.arcs)
	for k, v := range g.arcPos {
		c.arcPos[k] = v
	}
	return c
}

// Equal reports whether g and o hold arc-for-arc identical graphs
// (same node count, same arc set; adjacency order is not compared since
// it carries no meaning). Used by round-trip tests.
func (g *Graph) Equal(o *Graph) bool {
	if g.n != o.n || g.m != o.m {
		return false
	}
	if len(g.arcPos) != len(o.arcPos) {
		return false
	}
	for k := range g.arcPos {
		if _, ok := o.arcPos[k]; !ok {
			return false
		}
	}
	return true
}
