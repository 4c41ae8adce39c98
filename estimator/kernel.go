package estimator

import (
	"fmt"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// runKernel dispatches to the selected sampler kernel for m proposals,
// threading the IFD auxiliary state through when needed. Both Algorithm
// S and Algorithm EE drive the sampler this same way; only m and the
// caller's bookkeeping differ.
func runKernel(g *digraph.Graph, theta []float64, sel *stats.Selection, m int, hp Hyperparameters, ifdState *sampler.IFDState, rng *xrand.Stream) (*sampler.Result, error) {
	switch hp.Kernel {
	case sampler.Basic:
		return sampler.RunBasic(g, theta, sel, m, hp.Flags, rng)
	case sampler.TNT:
		return sampler.RunTNT(g, theta, sel, m, hp.Flags, rng)
	case sampler.IFD:
		return sampler.RunIFD(g, theta, sel, m, hp.Flags, hp.IFDK, ifdState, rng)
	default:
		return nil, fmt.Errorf("estimator: unknown sampler kernel %d", hp.Kernel)
	}
}

func netChange(res *sampler.Result) []float64 {
	dz := make([]float64, len(res.AddChangeStats))
	for k := range dz {
		dz[k] = res.AddChangeStats[k] + res.DelChangeStats[k]
	}
	return dz
}
