package sampler

import (
	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// RunTNT executes m proposals of the tie-no-tie kernel: a coin flip picks
// the add-branch or the delete-branch with equal probability, decoupling
// proposal density from the dyad space's sparsity. Two structural edge
// cases — an empty graph (only adds are possible) and a complete graph
// minus self-loops (only deletes are possible) — are handled by forcing
// the branch choice rather than spinning the coin against an empty
// candidate set.
//
// No Hastings ratio correction is applied, a known bias at low density
// (flags.TNTHastingsCorrection is accepted but currently has no effect
// — see DESIGN.md, Open Question 3).
func RunTNT(g *digraph.Graph, theta []float64, sel *stats.Selection, m int, flags Flags, rng *xrand.Stream) (*Result, error) {
	if g.N() < 2 {
		return nil, ErrGraphTooSmall
	}
	if err := checkTheta(theta, sel.P()); err != nil {
		return nil, err
	}

	res := newResult(sel.P())
	snow := g.Snowball()
	maxArcs := int64(g.N()) * int64(g.N()-1)

	for step := 0; step < m; step++ {
		deleteBranch := chooseBranch(g, maxArcs, rng)

		var err error
		if deleteBranch {
			i, j, pos, derr := drawDeletable(g, snow, flags, rng)
			if derr != nil {
				return nil, derr
			}
			err = proposeDelete(g, sel, theta, i, j, pos, 0, rng, flags, res)
		} else {
			i, j, derr := drawInsertable(g, snow, flags, rng)
			if derr != nil {
				return nil, derr
			}
			err = proposeInsert(g, sel, theta, i, j, 0, rng, flags, res)
		}
		if err != nil {
			return nil, err
		}
	}
	res.finalize()
	return res, nil
}

// chooseBranch forces delete-only on a complete graph, add-only on an
// empty graph, and otherwise flips a fair coin.
func chooseBranch(g *digraph.Graph, maxArcs int64, rng *xrand.Stream) bool {
	if g.M() == 0 {
		return false
	}
	if int64(g.M()) >= maxArcs {
		return true
	}
	return rng.Bool()
}

func drawDeletable(g *digraph.Graph, snow *digraph.SnowballMeta, flags Flags, rng *xrand.Stream) (i, j, pos int32, err error) {
	for attempts := 0; attempts < maxRejectionAttempts; attempts++ {
		pos = rng.Int32N(g.M())
		arc, aerr := g.ArcAt(pos)
		if aerr != nil {
			return 0, 0, 0, aerr
		}
		i, j = arc.Tail, arc.Head
		if flags.UseConditionalEstimation && snow != nil && snow.CanDelete(i, j) != nil {
			continue
		}
		return i, j, pos, nil
	}
	return 0, 0, 0, ErrRejectionSamplingExhausted
}

func drawInsertable(g *digraph.Graph, snow *digraph.SnowballMeta, flags Flags, rng *xrand.Stream) (i, j int32, err error) {
	for attempts := 0; attempts < maxRejectionAttempts; attempts++ {
		i, j = rng.DistinctPair(g.N())
		if g.IsArc(i, j) {
			continue
		}
		if flags.ForbidReciprocity && g.IsArc(j, i) {
			continue
		}
		if flags.UseConditionalEstimation && snow != nil && snow.CanToggle(i, j) != nil {
			continue
		}
		return i, j, nil
	}
	return 0, 0, ErrRejectionSamplingExhausted
}
