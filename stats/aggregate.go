package stats

import (
	"fmt"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/digraph/twopath"
)

// CalcChangeStats evaluates every statistic in sel for the dyad (i, j)
// and returns the resulting change vector dz, of length sel.P().
//
// Every statistic function computes the change an *insertion* of i->j
// would cause. When isDelete is true the arc has already been removed
// from g by the caller (sampler package contract: compute_delta runs
// after the speculative mutation), so the same insertion-shaped formula
// evaluated on the post-removal graph equals s(g_before) - s(g_after);
// CalcChangeStats negates the whole vector once here rather than having
// each statistic special-case isDelete (see DESIGN.md, Open Question:
// delete-sign site).
func CalcChangeStats(g *digraph.Graph, sel *Selection, i, j int32, isDelete bool) ([]float64, error) {
	idx, err := resolveTwoPathIndex(g)
	if err != nil {
		return nil, err
	}
	dz := make([]float64, sel.P())
	for k, stat := range sel.Items {
		v, err := evalStatistic(g, idx, sel, stat, i, j)
		if err != nil {
			return nil, err
		}
		dz[k] = v
	}
	if isDelete {
		for k := range dz {
			dz[k] = -dz[k]
		}
	}
	return dz, nil
}

// resolveTwoPathIndex narrows g's attached digraph.TwoPathIndex (the
// maintenance-only interface digraph itself depends on) down to the
// richer twopath.Index (maintenance + Query) the statistic library
// actually needs to read counts back out. A disabled accelerator is a
// nil digraph.TwoPathIndex, which must stay a true nil twopath.Index
// (not a non-nil interface wrapping a nil pointer) so twoPathCount's
// idx != nil fallback check behaves correctly.
func resolveTwoPathIndex(g *digraph.Graph) (twopath.Index, error) {
	raw := g.TwoPath()
	if raw == nil {
		return nil, nil
	}
	idx, ok := raw.(twopath.Index)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrTwoPathIndexType, raw)
	}
	return idx, nil
}

func evalStatistic(g *digraph.Graph, idx twopath.Index, sel *Selection, stat Statistic, i, j int32) (float64, error) {
	switch stat.Kind {
	case Arc:
		return arcDelta(g, idx, i, j), nil
	case Reciprocity:
		return reciprocityDelta(g, idx, i, j), nil
	case AltKStarsOut:
		return altKStarsOutDelta(g, idx, i, j, sel.Lambda), nil
	case AltKStarsIn:
		return altKStarsInDelta(g, idx, i, j, sel.Lambda), nil
	case AltKTriangleTransitive:
		return altKTriangleTransitiveDelta(g, idx, i, j, sel.Lambda), nil
	case AltKTriangleCyclic:
		return altKTriangleCyclicDelta(g, idx, i, j, sel.Lambda), nil
	case AltKTriangleTransitiveTies:
		return altKTriangleTransitiveTiesDelta(g, idx, i, j, sel.Lambda), nil
	case AltKTriangleCyclicTies:
		return altKTriangleCyclicTiesDelta(g, idx, i, j, sel.Lambda), nil
	case AltTwoPathOut:
		return altTwoPathOutDelta(g, idx, i, j, sel.Lambda), nil
	case AltTwoPathIn:
		return altTwoPathInDelta(g, idx, i, j, sel.Lambda), nil
	case AltTwoPathMixed:
		return altTwoPathMixedDelta(g, idx, i, j, sel.Lambda), nil
	case Sender:
		return senderDelta(g, stat, i, j)
	case Receiver:
		return receiverDelta(g, stat, i, j)
	case Matching:
		return matchingDelta(g, stat, i, j)
	case MatchingReciprocity:
		return matchingReciprocityDelta(g, stat, i, j)
	case ContinuousDiff:
		return continuousDiffDelta(g, stat, i, j)
	case DyadicCovariate:
		return dyadicCovariateDelta(sel, stat, i, j)
	case AttrInteraction:
		return attrInteractionDelta(g, stat, i, j)
	default:
		return 0, fmt.Errorf("%w: kind %d", ErrUnknownStatistic, stat.Kind)
	}
}
