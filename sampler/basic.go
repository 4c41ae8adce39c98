package sampler

import (
	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// RunBasic executes m proposals of the basic kernel: draw an ordered
// pair i != j uniformly, propose deleting i->j if it is present or
// inserting it if it is absent, accept or reject.
func RunBasic(g *digraph.Graph, theta []float64, sel *stats.Selection, m int, flags Flags, rng *xrand.Stream) (*Result, error) {
	if g.N() < 2 {
		return nil, ErrGraphTooSmall
	}
	if err := checkTheta(theta, sel.P()); err != nil {
		return nil, err
	}

	res := newResult(sel.P())
	for step := 0; step < m; step++ {
		i, j := rng.DistinctPair(g.N())

		if flags.ForbidReciprocity && g.IsArc(j, i) && !g.IsArc(i, j) {
			// A reject-only move: forbid_reciprocity prevents completing
			// a mutual pair here, so no toggle is attempted at all.
			res.Proposals++
			continue
		}

		var err error
		if g.IsArc(i, j) {
			pos, perr := locateArc(g, i, j)
			if perr != nil {
				return nil, perr
			}
			err = proposeDelete(g, sel, theta, i, j, pos, 0, rng, flags, res)
		} else {
			err = proposeInsert(g, sel, theta, i, j, 0, rng, flags, res)
		}
		if err != nil {
			return nil, err
		}
	}
	res.finalize()
	return res, nil
}
