// Package simulate implements the simulation driver: given a fixed
// theta, repeatedly run a sampler kernel to burn in, then emit a stream
// of graph statistics (and, optionally, graph snapshots) at regular
// intervals.
package simulate

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

// ErrSampleSizeMustBePositive guards the one precondition the driver
// itself asserts; burnin and interval may legitimately be zero (no
// burn-in, emit every proposal).
var ErrSampleSizeMustBePositive = errors.New("simulate: sampleSize must be positive")

// Options configures one simulation run.
type Options struct {
	Burnin     int // proposals to run and discard before the first sample
	Interval   int // proposals to run between successive samples
	SampleSize int // number of samples to emit

	Kernel sampler.Kernel
	IFDK   float64
	Flags  sampler.Flags
}

// Snapshot is one emitted sample: the statistics vector at that point,
// the cumulative acceptance rate since burn-in, and — when the caller
// opts to persist graphs — a deep copy of the current graph.
type Snapshot struct {
	Index          int
	Statistics     []float64
	AcceptanceRate float64
	Graph          *digraph.Graph // nil unless Run's persistGraphs is true
}

// Run executes the burnin/interval/sample loop against g in place (the
// caller owns g's lifetime; Run mutates it). RunID is a fresh tag for
// the run (cmd/ergmcore prints it in its log line) — google/uuid gives a
// collision-free tag without the caller having to coordinate one
// itself.
func Run(g *digraph.Graph, theta []float64, sel *stats.Selection, opt Options, rng *xrand.Stream, persistGraphs bool) (runID uuid.UUID, snapshots []Snapshot, err error) {
	if opt.SampleSize <= 0 {
		return uuid.UUID{}, nil, ErrSampleSizeMustBePositive
	}

	runID = uuid.New()
	var ifdState *sampler.IFDState
	if opt.Kernel == sampler.IFD {
		ifdState = sampler.NewIFDState()
	}

	runKernel := func(m int) (*sampler.Result, error) {
		switch opt.Kernel {
		case sampler.Basic:
			return sampler.RunBasic(g, theta, sel, m, opt.Flags, rng)
		case sampler.TNT:
			return sampler.RunTNT(g, theta, sel, m, opt.Flags, rng)
		case sampler.IFD:
			return sampler.RunIFD(g, theta, sel, m, opt.Flags, opt.IFDK, ifdState, rng)
		default:
			return nil, errors.New("simulate: unknown sampler kernel")
		}
	}

	if opt.Burnin > 0 {
		if _, err := runKernel(opt.Burnin); err != nil {
			return runID, nil, err
		}
	}

	snapshots = make([]Snapshot, 0, opt.SampleSize)
	var accepted, proposals int
	for i := 0; i < opt.SampleSize; i++ {
		if opt.Interval > 0 {
			res, err := runKernel(opt.Interval)
			if err != nil {
				return runID, nil, err
			}
			accepted, proposals = accepted+res.Accepted, proposals+res.Proposals
		}

		res, err := runKernel(1)
		if err != nil {
			return runID, nil, err
		}
		accepted, proposals = accepted+res.Accepted, proposals+res.Proposals

		snap := Snapshot{
			Index:          i,
			Statistics:     currentStatistics(g, sel),
			AcceptanceRate: float64(accepted) / float64(proposals),
		}
		if persistGraphs {
			snap.Graph = g.Clone()
		}
		snapshots = append(snapshots, snap)
	}
	return runID, snapshots, nil
}

// currentStatistics evaluates the full dot-free statistics vector s(G)
// by summing every arc's contribution to each selected statistic, since
// stats.CalcChangeStats only ever returns a dyad-level delta rather than
// the absolute value. Proportional to M rather than the hot-path's O(1)
// per-toggle cost, so callers use it only at sample points, never inside
// the inner sampling loop.
func currentStatistics(g *digraph.Graph, sel *stats.Selection) []float64 {
	totals := make([]float64, sel.P())
	empty := digraph.NewGraph(g.N()).WithAttributes(g.Attrs())
	for _, arc := range g.Arcs() {
		dz, err := stats.CalcChangeStats(empty, sel, arc.Tail, arc.Head, false)
		if err != nil {
			continue
		}
		_ = empty.InsertArc(arc.Tail, arc.Head)
		for k, v := range dz {
			totals[k] += v
		}
	}
	return totals
}
