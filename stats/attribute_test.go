package stats_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/stats"
)

func TestSenderReceiverDelta_RespectsMissing(t *testing.T) {
	g := digraph.NewGraph(3)
	attrs := digraph.NewNodeAttributes(3)
	if err := attrs.AddBinary("smoker", []int8{1, 0, 1}, []bool{false, false, true}); err != nil {
		t.Fatalf("AddBinary: %v", err)
	}
	g = g.WithAttributes(attrs)

	sel, err := stats.ParseSelection([]string{"sender:smoker", "receiver:smoker"}, 2.0)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}

	dz, err := stats.CalcChangeStats(g, sel, 0, 1, false)
	if err != nil {
		t.Fatalf("CalcChangeStats: %v", err)
	}
	if dz[0] != 1 {
		t.Fatalf("expected sender delta 1 for smoker tail, got %v", dz[0])
	}
	if dz[1] != 0 {
		t.Fatalf("expected receiver delta 0 for non-smoker head, got %v", dz[1])
	}

	// node 2 is marked missing; both terms must contribute zero.
	dz, err = stats.CalcChangeStats(g, sel, 2, 1, false)
	if err != nil {
		t.Fatalf("CalcChangeStats: %v", err)
	}
	if dz[0] != 0 {
		t.Fatalf("expected sender delta 0 for missing tail value, got %v", dz[0])
	}
}

func TestMatchingDelta_AgreementOnly(t *testing.T) {
	g := digraph.NewGraph(3)
	attrs := digraph.NewNodeAttributes(3)
	if err := attrs.AddCategorical("group", []int32{1, 1, 2}, []bool{false, false, false}); err != nil {
		t.Fatalf("AddCategorical: %v", err)
	}
	g = g.WithAttributes(attrs)

	sel, err := stats.ParseSelection([]string{"matching:group"}, 2.0)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}

	dz, err := stats.CalcChangeStats(g, sel, 0, 1, false)
	if err != nil {
		t.Fatalf("CalcChangeStats: %v", err)
	}
	if dz[0] != 1 {
		t.Fatalf("expected matching delta 1 for same group, got %v", dz[0])
	}

	dz, err = stats.CalcChangeStats(g, sel, 0, 2, false)
	if err != nil {
		t.Fatalf("CalcChangeStats: %v", err)
	}
	if dz[0] != 0 {
		t.Fatalf("expected matching delta 0 for different group, got %v", dz[0])
	}
}

func TestDyadicCovariateDelta_MissingCovariateErrors(t *testing.T) {
	g := digraph.NewGraph(2)
	sel, err := stats.ParseSelection([]string{"dyadic_covariate:distance"}, 2.0)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}
	_, err = stats.CalcChangeStats(g, sel, 0, 1, false)
	if !errors.Is(err, stats.ErrMissingCovariate) {
		t.Fatalf("expected ErrMissingCovariate, got %v", err)
	}

	sel.AddCovariate("distance", [][]float64{{0, 3.5}, {3.5, 0}})
	dz, err := stats.CalcChangeStats(g, sel, 0, 1, false)
	if err != nil {
		t.Fatalf("CalcChangeStats after registering covariate: %v", err)
	}
	if dz[0] != 3.5 {
		t.Fatalf("expected covariate value 3.5, got %v", dz[0])
	}
}

func TestParseSelection_UnknownNameAndArity(t *testing.T) {
	if _, err := stats.ParseSelection([]string{"bogus"}, 2.0); !errors.Is(err, stats.ErrUnknownStatistic) {
		t.Fatalf("expected ErrUnknownStatistic for unknown name, got %v", err)
	}
	if _, err := stats.ParseSelection([]string{"sender"}, 2.0); !errors.Is(err, stats.ErrUnknownStatistic) {
		t.Fatalf("expected arity error for missing argument, got %v", err)
	}
	if _, err := stats.ParseSelection([]string{"arc:extra"}, 2.0); !errors.Is(err, stats.ErrUnknownStatistic) {
		t.Fatalf("expected arity error for unexpected argument, got %v", err)
	}
}
