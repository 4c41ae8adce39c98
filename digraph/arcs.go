// File: arcs.go
// Role: arc presence, insert/remove by swap-with-last, iteration, and the
// O(1) reciprocity test the change-statistic library relies on.
//
// Invariants held outside a single call:
//   - IsArc(i,j) agrees with membership in out[i]/in[j]/arcs/arcPos.
//   - len(arcs) == M.
//   - no self-loops, no duplicate arcs.
//   - for every arc, arcPos[pack(arc)] is its current index into arcs.
package digraph

// IsArc reports whether the arc i->j is currently present.
// Complexity: O(1) expected (map lookup).
func (g *Graph) IsArc(i, j int32) bool {
	_, ok := g.arcPos[packArc(i, j)]
	return ok
}

// IsMutual reports whether both i->j and j->i are present. Since IsArc is
// already an O(1) map lookup, this is the reciprocity test the
// change-statistic library needs without any extra bookkeeping.
// Complexity: O(1) expected.
func (g *Graph) IsMutual(i, j int32) bool {
	return g.IsArc(i, j) && g.IsArc(j, i)
}

// OutDegree returns the number of arcs leaving i.
func (g *Graph) OutDegree(i int32) int { return len(g.out[i]) }

// InDegree returns the number of arcs entering i.
func (g *Graph) InDegree(i int32) int { return len(g.in[i]) }

// OutNeighbors returns the (unordered) slice of heads reachable directly
// from i. Callers must not mutate the returned slice.
func (g *Graph) OutNeighbors(i int32) []int32 { return g.out[i] }

// InNeighbors returns the (unordered) slice of tails reaching i directly.
// Callers must not mutate the returned slice.
func (g *Graph) InNeighbors(i int32) []int32 { return g.in[i] }

// Arcs returns the flat arc list. Order is not meaningful and changes
// across toggles (swap-with-last); callers needing a stable snapshot
// must copy.
func (g *Graph) Arcs() []Arc { return g.arcs }

// ArcAt returns the arc currently stored at flat-list position pos, used
// by samplers that draw a uniform-random existing arc by index.
func (g *Graph) ArcAt(pos int32) (Arc, error) {
	if pos < 0 || int(pos) >= len(g.arcs) {
		return Arc{}, ErrArcPosition
	}
	return g.arcs[pos], nil
}

// InsertArc adds i->j. Requires i != j and !IsArc(i,j); both i and j must
// be in range [0, N). Updates out/in adjacency, the flat arc list, the
// reverse index, the two-path accelerator (if attached), and — if both
// endpoints are inner nodes under conditional estimation — the caller
// should use InsertInnerArc instead so snowball bookkeeping stays
// consistent.
// Complexity: O(1) amortized.
func (g *Graph) InsertArc(i, j int32) error {
	if err := g.checkRange(i, j); err != nil {
		return err
	}
	if i == j {
		return ErrSelfLoop
	}
	if g.IsArc(i, j) {
		return ErrArcExists
	}

	g.out[i] = append(g.out[i], j)
	g.in[j] = append(g.in[j], i)

	pos := int32(len(g.arcs))
	g.arcs = append(g.arcs, Arc{Tail: i, Head: j})
	g.arcPos[packArc(i, j)] = pos
	g.m++

	if g.twoPath != nil {
		g.twoPath.Update(g, i, j, true)
	}
	debugCheck(g)
	return nil
}

// RemoveArc deletes the arc currently stored at flat-list position pos,
// which must equal the arc i->j's current position (as returned by a
// uniform-random draw over Arcs()). Removal is O(1) via swap-with-last
// in out[i], in[j], and arcs.
func (g *Graph) RemoveArc(i, j int32, pos int32) error {
	if err := g.checkRange(i, j); err != nil {
		return err
	}
	key := packArc(i, j)
	cur, ok := g.arcPos[key]
	if !ok {
		return ErrArcMissing
	}
	if cur != pos {
		return ErrArcPosition
	}

	g.removeFromFlatList(pos)
	g.removeFromAdjacency(g.out[i], j, func(v []int32) { g.out[i] = v })
	g.removeFromAdjacency(g.in[j], i, func(v []int32) { g.in[j] = v })
	delete(g.arcPos, key)
	g.m--

	if g.twoPath != nil {
		g.twoPath.Update(g, i, j, false)
	}
	debugCheck(g)
	return nil
}

// removeFromFlatList swaps the arc at pos with the last arc and truncates,
// fixing up arcPos for the arc that moved.
func (g *Graph) removeFromFlatList(pos int32) {
	last := int32(len(g.arcs)) - 1
	if pos != last {
		moved := g.arcs[last]
		g.arcs[pos] = moved
		g.arcPos[packArc(moved.Tail, moved.Head)] = pos
	}
	g.arcs = g.arcs[:last]
}

// removeFromAdjacency deletes the first occurrence of v from s via
// swap-with-last and writes the shortened slice back through set.
func (g *Graph) removeFromAdjacency(s []int32, v int32, set func([]int32)) {
	for k := range s {
		if s[k] == v {
			last := len(s) - 1
			s[k] = s[last]
			set(s[:last])
			return
		}
	}
}

func (g *Graph) checkRange(i, j int32) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return ErrNodeRange
	}
	return nil
}
