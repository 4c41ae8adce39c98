package xrand_test

import (
	"testing"

	"github.com/katalvlaran/ergmcore/xrand"
)

func TestNewStream_DeterministicReplay(t *testing.T) {
	a := xrand.NewStream(1, 7)
	b := xrand.NewStream(1, 7)

	for i := 0; i < 100; i++ {
		va := a.IntN(1000)
		vb := b.IntN(1000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestNewStream_DifferentRankDiverges(t *testing.T) {
	a := xrand.NewStream(1, 1)
	b := xrand.NewStream(1, 2)

	same := true
	for i := 0; i < 20; i++ {
		if a.IntN(1<<30) != b.IntN(1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected streams with different rank to diverge")
	}
}

func TestDerive_IsIndependentOfParentContinuation(t *testing.T) {
	parent := xrand.NewStream(5, 5)
	child := parent.Derive(42)

	// The child must not simply replay the parent's future draws.
	diverged := false
	for i := 0; i < 20; i++ {
		if parent.IntN(1<<30) != child.IntN(1<<30) {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatalf("expected derived stream to diverge from parent continuation")
	}
}

func TestDistinctPair_NeverEqual(t *testing.T) {
	s := xrand.NewStream(3, 1)
	for i := 0; i < 1000; i++ {
		a, b := s.DistinctPair(10)
		if a == b {
			t.Fatalf("DistinctPair returned equal values: %d, %d", a, b)
		}
		if a < 0 || a >= 10 || b < 0 || b >= 10 {
			t.Fatalf("DistinctPair out of range: %d, %d", a, b)
		}
	}
}
