package digraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ergmcore/digraph"
)

func TestInsertRemoveArc_RoundTrip(t *testing.T) {
	g := digraph.NewGraph(4)

	if err := g.InsertArc(0, 1); err != nil {
		t.Fatalf("InsertArc(0,1): %v", err)
	}
	if !g.IsArc(0, 1) {
		t.Fatalf("expected IsArc(0,1) true after insert")
	}
	if g.M() != 1 {
		t.Fatalf("expected M()==1, got %d", g.M())
	}

	pos, err := findArcPos(g, 0, 1)
	if err != nil {
		t.Fatalf("findArcPos: %v", err)
	}
	if err := g.RemoveArc(0, 1, pos); err != nil {
		t.Fatalf("RemoveArc(0,1): %v", err)
	}
	if g.IsArc(0, 1) {
		t.Fatalf("expected IsArc(0,1) false after remove")
	}
	if g.M() != 0 {
		t.Fatalf("expected M()==0 after round trip, got %d", g.M())
	}
}

func TestInsertArc_RejectsSelfLoopAndDuplicate(t *testing.T) {
	g := digraph.NewGraph(3)
	if err := g.InsertArc(1, 1); !errors.Is(err, digraph.ErrSelfLoop) {
		t.Fatalf("expected ErrSelfLoop, got %v", err)
	}
	if err := g.InsertArc(0, 1); err != nil {
		t.Fatalf("InsertArc(0,1): %v", err)
	}
	if err := g.InsertArc(0, 1); !errors.Is(err, digraph.ErrArcExists) {
		t.Fatalf("expected ErrArcExists, got %v", err)
	}
}

func TestRemoveArc_SwapWithLastKeepsPositionsConsistent(t *testing.T) {
	g := digraph.NewGraph(5)
	pairs := [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 4}}
	for _, p := range pairs {
		if err := g.InsertArc(p[0], p[1]); err != nil {
			t.Fatalf("InsertArc%v: %v", p, err)
		}
	}

	// Remove a middle arc; every remaining arc must still resolve to the
	// position its entry in arcPos claims.
	pos, err := findArcPos(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.RemoveArc(0, 2, pos); err != nil {
		t.Fatalf("RemoveArc: %v", err)
	}

	for _, p := range [][2]int32{{0, 1}, {0, 3}, {1, 4}} {
		if !g.IsArc(p[0], p[1]) {
			t.Fatalf("expected arc %v still present", p)
		}
		gotPos, err := findArcPos(g, p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		arc, err := g.ArcAt(gotPos)
		if err != nil {
			t.Fatal(err)
		}
		if arc.Tail != p[0] || arc.Head != p[1] {
			t.Fatalf("arcPos/Arcs desync for %v: ArcAt(%d)=%v", p, gotPos, arc)
		}
	}
	if g.IsArc(0, 2) {
		t.Fatalf("expected (0,2) removed")
	}
	if int(g.M()) != len(g.Arcs()) {
		t.Fatalf("M()=%d does not match len(Arcs())=%d", g.M(), len(g.Arcs()))
	}
}

func TestIsMutual(t *testing.T) {
	g := digraph.NewGraph(2)
	if g.IsMutual(0, 1) {
		t.Fatalf("expected not mutual before any arcs")
	}
	_ = g.InsertArc(0, 1)
	if g.IsMutual(0, 1) {
		t.Fatalf("expected not mutual with only one direction")
	}
	_ = g.InsertArc(1, 0)
	if !g.IsMutual(0, 1) {
		t.Fatalf("expected mutual once both directions present")
	}
}

func TestClone_Equal(t *testing.T) {
	g := digraph.NewGraph(3)
	_ = g.InsertArc(0, 1)
	_ = g.InsertArc(1, 2)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("expected clone to equal original")
	}
	pos, _ := findArcPos(c, 0, 1)
	_ = c.RemoveArc(0, 1, pos)
	if g.Equal(c) {
		t.Fatalf("expected mutated clone to differ from original")
	}
	if !g.IsArc(0, 1) {
		t.Fatalf("mutating the clone must not affect the original")
	}
}

// findArcPos locates the current flat-list position of arc i->j by
// linear scan, mirroring the "uniform-random draw over the flat list"
// contract samplers use in production (there the position comes from the
// draw itself, not a search).
func findArcPos(g *digraph.Graph, i, j int32) (int32, error) {
	for idx, a := range g.Arcs() {
		if a.Tail == i && a.Head == j {
			return int32(idx), nil
		}
	}
	return 0, digraph.ErrArcMissing
}
