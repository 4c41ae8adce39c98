package simulate_test

import (
	"testing"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/sampler"
	"github.com/katalvlaran/ergmcore/simulate"
	"github.com/katalvlaran/ergmcore/stats"
	"github.com/katalvlaran/ergmcore/xrand"
)

func TestRun_EmitsRequestedSampleCount(t *testing.T) {
	g := digraph.NewGraph(5)
	sel, err := stats.ParseSelection([]string{"arc"}, 2.0)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}
	rng := xrand.NewStream(20, 0)

	opt := simulate.Options{
		Burnin: 50, Interval: 10, SampleSize: 7,
		Kernel: sampler.Basic,
		Flags:  sampler.Flags{PerformMove: true},
	}

	runID, snapshots, err := simulate.Run(g, []float64{-0.5}, sel, opt, rng, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if runID.String() == "" {
		t.Fatalf("expected a non-empty run id")
	}
	if len(snapshots) != 7 {
		t.Fatalf("expected 7 snapshots, got %d", len(snapshots))
	}
	for i, snap := range snapshots {
		if snap.Index != i {
			t.Fatalf("snapshot %d has Index=%d", i, snap.Index)
		}
		if snap.Graph != nil {
			t.Fatalf("expected no persisted graph when persistGraphs=false")
		}
	}
}

func TestRun_PersistsGraphsWhenRequested(t *testing.T) {
	g := digraph.NewGraph(4)
	sel, err := stats.ParseSelection([]string{"arc"}, 2.0)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}
	rng := xrand.NewStream(21, 0)

	opt := simulate.Options{SampleSize: 3, Kernel: sampler.Basic, Flags: sampler.Flags{PerformMove: true}}
	_, snapshots, err := simulate.Run(g, []float64{0}, sel, opt, rng, true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, snap := range snapshots {
		if snap.Graph == nil {
			t.Fatalf("expected a persisted graph snapshot")
		}
	}
}

func TestRun_RejectsNonPositiveSampleSize(t *testing.T) {
	g := digraph.NewGraph(3)
	sel, _ := stats.ParseSelection([]string{"arc"}, 2.0)
	rng := xrand.NewStream(22, 0)
	_, _, err := simulate.Run(g, []float64{0}, sel, simulate.Options{SampleSize: 0}, rng, false)
	if err != simulate.ErrSampleSizeMustBePositive {
		t.Fatalf("expected ErrSampleSizeMustBePositive, got %v", err)
	}
}
