package estimator

import (
	"math"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
	"gonum.org/v1/gonum/stat"
)

// thetaHistoryWindow bounds how many recent theta_k values the Borisenko
// variance check looks at. The check itself is well-defined (the
// variance of recent theta_k values) but not the window length; 20
// gives the check enough samples for stat.MeanStdDev to be meaningful
// without letting stale, pre-convergence values dominate the ratio.
const thetaHistoryWindow = 20

// dampingFactor shrinks an outer step's update for component k when its
// relative variability exceeds compC, proportionally shrinking the
// effective step for that component. Not pinned to any specific value;
// halving is the smallest correction that visibly damps a component
// without freezing it outright.
const dampingFactor = 0.5

// RunAlgorithmEE executes the parameter-refinement phase, starting from
// theta0 and the per-component scale d that Algorithm S produced, and
// returns the full per-outer-iteration trajectory.
func RunAlgorithmEE(g *digraph.Graph, sel *stats.Selection, hp Hyperparameters, theta0, d []float64, rng *xrand.Stream, rec Recorder) (Trajectory, error) {
	if err := hp.Validate(); err != nil {
		return nil, err
	}

	p := sel.P()
	theta := append([]float64(nil), theta0...)
	history := make([][]float64, 0, thetaHistoryWindow)

	var ifdState *sampler.IFDState
	if hp.Kernel == sampler.IFD {
		ifdState = sampler.NewIFDState()
	}

	traj := make(Trajectory, 0, hp.EEsteps)

	for step := 0; step < hp.EEsteps; step++ {
		dzA := make([]float64, p)
		var acceptSum float64
		for inner := 0; inner < hp.EEinnerSteps; inner++ {
			res, err := runKernel(g, theta, sel, 1, hp, ifdState, rng)
			if err != nil {
				return nil, err
			}
			innerDz := netChange(res)
			for k, v := range innerDz {
				dzA[k] += v
			}
			acceptSum += res.AcceptanceRate
		}

		for k := range theta {
			delta := hp.ACAEE * d[k] * dzA[k]
			if borisenkoExceeds(history, k, hp.CompC) {
				delta *= dampingFactor
			}
			theta[k] -= delta
			if math.IsNaN(theta[k]) || math.IsInf(theta[k], 0) {
				return nil, ErrNonFiniteThetaProduced
			}
		}

		history = pushHistory(history, theta)

		avgAccept := acceptSum / float64(hp.EEinnerSteps)
		point := TrajectoryPoint{
			Theta:          append([]float64(nil), theta...),
			DzA:            append([]float64(nil), dzA...),
			AcceptanceRate: avgAccept,
		}
		traj = append(traj, point)

		if rec != nil {
			rec.ObserveTheta(theta)
			rec.ObserveDzANorm(norm(dzA))
			rec.ObserveAcceptanceRate(avgAccept)
			rec.ObserveOuterStep(step)
		}
	}
	return traj, nil
}

// borisenkoExceeds reports whether component k's recent theta values have
// a relative spread (sd/mean) exceeding compC, the clamp against
// pathological drift.
func borisenkoExceeds(history [][]float64, k int, compC float64) bool {
	if len(history) < 2 {
		return false
	}
	series := make([]float64, len(history))
	for i, h := range history {
		series[i] = h[k]
	}
	mean, sd := stat.MeanStdDev(series, nil)
	if mean == 0 {
		return false
	}
	return math.Abs(sd/mean) > compC
}

func pushHistory(history [][]float64, theta []float64) [][]float64 {
	entry := append([]float64(nil), theta...)
	history = append(history, entry)
	if len(history) > thetaHistoryWindow {
		history = history[1:]
	}
	return history
}
