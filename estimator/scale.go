package estimator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// emaAlpha is the smoothing factor for Algorithm S's online estimate of
// D_k from recent |dzA_k| magnitudes. Not pinned to any specific value
// by the estimation procedure itself; 0.1 gives roughly a 10-iteration
// effective window, short enough to track an initial burn-in swing
// without chasing single-step noise.
const emaAlpha = 0.1

// densityAdjustment multiplies Ssteps by a factor that grows as observed
// density shrinks, giving sparser networks proportionally more work.
// minDensity guards against a divide-by-near-zero blowup on a genuinely
// empty graph.
func densityAdjustment(density float64) float64 {
	const minDensity = 0.01
	if density < minDensity {
		density = minDensity
	}
	factor := 1 / density
	if factor > 20 {
		factor = 20
	}
	return factor
}

// RunAlgorithmS executes the scale-finding phase starting from theta=0,
// and returns the final theta together with the per-component scale D
// Algorithm EE will need.
func RunAlgorithmS(g *digraph.Graph, sel *stats.Selection, hp Hyperparameters, rng *xrand.Stream, rec Recorder) (theta, d []float64, err error) {
	if err := hp.Validate(); err != nil {
		return nil, nil, err
	}

	p := sel.P()
	theta = make([]float64, p)
	d = make([]float64, p)
	for k := range d {
		d[k] = 1 // neutral until the first |dzA_k| observation arrives
	}

	density := float64(g.M()) / float64(int64(g.N())*int64(g.N()-1))
	steps := int(float64(hp.Ssteps) * densityAdjustment(density))

	var ifdState *sampler.IFDState
	if hp.Kernel == sampler.IFD {
		ifdState = sampler.NewIFDState()
	}

	for step := 0; step < steps; step++ {
		res, rerr := runKernel(g, theta, sel, hp.SamplerSteps, hp, ifdState, rng)
		if rerr != nil {
			return nil, nil, rerr
		}
		dzA := netChange(res)

		for k, v := range dzA {
			d[k] = (1-emaAlpha)*d[k] + emaAlpha*math.Abs(v)
			theta[k] -= hp.ACAS * d[k] * sign(v)
			if math.IsNaN(theta[k]) || math.IsInf(theta[k], 0) {
				return nil, nil, ErrNonFiniteThetaProduced
			}
		}

		if rec != nil {
			rec.ObserveTheta(theta)
			rec.ObserveDzANorm(norm(dzA))
			rec.ObserveAcceptanceRate(res.AcceptanceRate)
			rec.ObserveOuterStep(step)
		}
	}
	return theta, d, nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// norm is the Euclidean (L2) norm, via gonum/floats rather than a
// hand-rolled sum-of-squares loop.
func norm(v []float64) float64 {
	return floats.Norm(v, 2)
}
