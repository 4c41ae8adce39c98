// Package sampler implements the MCMC kernels that walk the space of
// directed graphs under an ERGM distribution: Basic, tie-no-tie (TNT),
// and improved fixed density (IFD). All three share one proposal state
// machine — propose, compute the change statistics, accept or reject,
// then commit or restore — modeled here as a single internal
// decide/restore pair rather than three duplicated accept-loops, one
// mutable state object threaded through a driving loop.
package sampler

import (
	"errors"
	"math"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// Sentinel errors for sampler preconditions.
var (
	ErrThetaSizeMismatch          = errors.New("sampler: theta length does not match selection size")
	ErrNonFiniteTheta             = errors.New("sampler: theta contains a non-finite component")
	ErrGraphTooSmall              = errors.New("sampler: graph needs at least 2 nodes")
	ErrRejectionSamplingExhausted = errors.New("sampler: rejection-resampling loop exceeded its attempt budget")
)

// maxRejectionAttempts bounds the rejection-resampling loop TNT's
// add-branch uses (and, symmetrically, its conditional-estimation
// delete-branch) — acceptable because the graph is sparse in the common
// case: a genuinely pathological configuration (e.g. a nearly complete
// graph under a conditional constraint that excludes almost every dyad)
// fails loudly instead of spinning forever.
const maxRejectionAttempts = 100000

// Kernel selects which proposal mechanism a Run call uses.
type Kernel uint8

const (
	Basic Kernel = iota
	TNT
	IFD
)

// Flags are the per-run behavioral switches threaded through every
// kernel call.
type Flags struct {
	PerformMove              bool
	UseConditionalEstimation bool
	ForbidReciprocity        bool
	// TNTHastingsCorrection would apply a Metropolis-Hastings correction
	// for TNT's asymmetric add/delete proposal probabilities. The
	// uncorrected behavior is the documented default; this field is
	// reserved for a future correction path and currently has no effect
	// (see DESIGN.md, Open Question 3).
	TNTHastingsCorrection bool
}

// Result accumulates one Run call's running sums, partitioned by move
// type so callers (Algorithm S/EE) can recover dzA = add+del.
type Result struct {
	AcceptanceRate float64
	AddChangeStats []float64
	DelChangeStats []float64
	Proposals      int
	Accepted       int
}

func newResult(p int) *Result {
	return &Result{AddChangeStats: make([]float64, p), DelChangeStats: make([]float64, p)}
}

func (r *Result) finalize() {
	if r.Proposals > 0 {
		r.AcceptanceRate = float64(r.Accepted) / float64(r.Proposals)
	}
}

func checkTheta(theta []float64, p int) error {
	if len(theta) != p {
		return ErrThetaSizeMismatch
	}
	for _, v := range theta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteTheta
		}
	}
	return nil
}

// dot is θ·dz.
func dot(theta, dz []float64) float64 {
	var sum float64
	for k, v := range theta {
		sum += v * dz[k]
	}
	return sum
}

// acceptProbability clamps exp(Δ): Δ>0, including +Inf, accepts
// unconditionally; NaN and -Inf are treated as a reject (non-finite θ
// itself is checked earlier and is fatal).
func acceptProbability(delta float64) float64 {
	if math.IsNaN(delta) {
		return 0
	}
	if delta > 0 {
		return 1
	}
	return math.Exp(delta)
}

// insertArc and removeArc route a toggle through the snowball-aware
// InsertInnerArc/RemoveInnerArc variants when conditional estimation is
// active, so PrevWaveDegree/NumInnerArcs never drift from the arc set a
// plain InsertArc/RemoveArc would otherwise leave them describing; under
// unconditional estimation they are exactly InsertArc/RemoveArc.
func insertArc(g *digraph.Graph, i, j int32, flags Flags) error {
	if flags.UseConditionalEstimation {
		return g.InsertInnerArc(i, j)
	}
	return g.InsertArc(i, j)
}

func removeArc(g *digraph.Graph, i, j, pos int32, flags Flags) error {
	if flags.UseConditionalEstimation {
		return g.RemoveInnerArc(i, j, pos)
	}
	return g.RemoveArc(i, j, pos)
}

func locateArc(g *digraph.Graph, i, j int32) (int32, error) {
	for idx, a := range g.Arcs() {
		if a.Tail == i && a.Head == j {
			return int32(idx), nil
		}
	}
	return 0, digraph.ErrArcMissing
}

// proposeInsert evaluates Δ = θ·dz + bias for inserting i->j against the
// graph with the arc still absent (the state every statistic's insertion
// formula reads), and inserts the arc only when the proposal is accepted
// and performMove is set; a reject, or an accept under
// perform_move=false, leaves g untouched. bias lets the IFD kernel fold
// its auxiliary ψ term into the acceptance decision without duplicating
// this whole function; Basic and TNT always pass 0.
func proposeInsert(g *digraph.Graph, sel *stats.Selection, theta []float64, i, j int32, bias float64, rng *xrand.Stream, flags Flags, res *Result) error {
	before := res.Accepted
	if err := decide(g, sel, theta, i, j, false, bias, rng, true, res, func() error { return nil }); err != nil {
		return err
	}
	if flags.PerformMove && res.Accepted > before {
		return insertArc(g, i, j, flags)
	}
	return nil
}

// proposeDelete mirrors proposeInsert for an arc whose current flat-list
// position, pos, the caller already knows (avoids a redundant locateArc
// scan when the kernel drew the arc directly from the flat list, as TNT's
// delete-branch and IFD's delete-branch both do).
func proposeDelete(g *digraph.Graph, sel *stats.Selection, theta []float64, i, j, pos int32, bias float64, rng *xrand.Stream, flags Flags, res *Result) error {
	if err := removeArc(g, i, j, pos, flags); err != nil {
		return err
	}
	return decide(g, sel, theta, i, j, true, bias, rng, flags.PerformMove, res, func() error {
		return insertArc(g, i, j, flags)
	})
}

func decide(g *digraph.Graph, sel *stats.Selection, theta []float64, i, j int32, isDelete bool, bias float64, rng *xrand.Stream, performMove bool, res *Result, restore func() error) error {
	dz, err := stats.CalcChangeStats(g, sel, i, j, isDelete)
	if err != nil {
		return err
	}
	delta := dot(theta, dz) + bias
	p := acceptProbability(delta)

	res.Proposals++
	accept := p >= 1 || rng.Float64() < p
	if accept {
		res.Accepted++
		accumulate(res, dz, isDelete)
		if performMove {
			return nil
		}
	}
	return restore()
}

func accumulate(res *Result, dz []float64, isDelete bool) {
	target := res.AddChangeStats
	if isDelete {
		target = res.DelChangeStats
	}
	for k, v := range dz {
		target[k] += v
	}
}
