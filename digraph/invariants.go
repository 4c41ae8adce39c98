package digraph

import "fmt"

// CheckInvariants walks g's arc-list and reverse-index bookkeeping and
// reports the first inconsistency found, wrapped in ErrInvariantViolation:
//
//   - IsArc(i,j) agrees with membership in out[i], in[j], arcs, and arcPos.
//   - len(arcs) == M.
//   - no self-loops, no duplicate arcs.
//   - for every arc, arcPos[pack(arc)] is its current index into arcs.
//
// It is O(N+M) and never called on the hot path outside a debug build
// (see debug_ergmdebug.go / debug_release.go); callers that want this
// check unconditionally (tests, offline tooling) call it directly.
func CheckInvariants(g *Graph) error {
	if int32(len(g.arcs)) != g.m {
		return fmt.Errorf("%w: len(arcs)=%d but m=%d", ErrInvariantViolation, len(g.arcs), g.m)
	}

	seen := make(map[uint64]int32, len(g.arcs))
	for pos, a := range g.arcs {
		if a.Tail == a.Head {
			return fmt.Errorf("%w: self-loop at arc position %d (node %d)", ErrInvariantViolation, pos, a.Tail)
		}
		key := packArc(a.Tail, a.Head)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate arc %d->%d", ErrInvariantViolation, a.Tail, a.Head)
		}
		seen[key] = int32(pos)

		want, ok := g.arcPos[key]
		if !ok {
			return fmt.Errorf("%w: arc %d->%d missing from arcPos", ErrInvariantViolation, a.Tail, a.Head)
		}
		if want != int32(pos) {
			return fmt.Errorf("%w: arcPos[%d->%d]=%d but arcs[%d] holds it", ErrInvariantViolation, a.Tail, a.Head, want, pos)
		}
		if !g.IsArc(a.Tail, a.Head) {
			return fmt.Errorf("%w: IsArc(%d,%d) false for a listed arc", ErrInvariantViolation, a.Tail, a.Head)
		}
		if !containsInt32(g.out[a.Tail], a.Head) {
			return fmt.Errorf("%w: out[%d] missing head %d", ErrInvariantViolation, a.Tail, a.Head)
		}
		if !containsInt32(g.in[a.Head], a.Tail) {
			return fmt.Errorf("%w: in[%d] missing tail %d", ErrInvariantViolation, a.Head, a.Tail)
		}
	}

	if len(g.arcPos) != len(seen) {
		return fmt.Errorf("%w: arcPos has %d entries but arcs has %d", ErrInvariantViolation, len(g.arcPos), len(seen))
	}
	return nil
}

func containsInt32(s []int32, v int32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
