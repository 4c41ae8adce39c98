package ioadapter_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/ergmcore/digraph"
	"github.com/katalvlaran/ergmcore/estimator"
	"github.com/katalvlaran/ergmcore/ioadapter"
)

const samplePajek = `*vertices 4
*arcs
1 2
2 3
1 3
`

func TestReadPajek_RenumbersToZeroBased(t *testing.T) {
	g, err := ioadapter.ReadPajek(strings.NewReader(samplePajek))
	if err != nil {
		t.Fatalf("ReadPajek: %v", err)
	}
	if g.N() != 4 {
		t.Fatalf("expected N=4, got %d", g.N())
	}
	if !g.IsArc(0, 1) || !g.IsArc(1, 2) || !g.IsArc(0, 2) {
		t.Fatalf("expected arcs 0->1, 1->2, 0->2 after renumbering")
	}
	if g.M() != 3 {
		t.Fatalf("expected M=3, got %d", g.M())
	}
}

func TestWritePajek_RoundTrips(t *testing.T) {
	g, err := ioadapter.ReadPajek(strings.NewReader(samplePajek))
	if err != nil {
		t.Fatalf("ReadPajek: %v", err)
	}
	var buf bytes.Buffer
	if err := ioadapter.WritePajek(&buf, g); err != nil {
		t.Fatalf("WritePajek: %v", err)
	}
	g2, err := ioadapter.ReadPajek(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadPajek (round trip): %v", err)
	}
	if !g.Equal(g2) {
		t.Fatalf("expected round-tripped graph to equal the original")
	}
}

func TestReadPajek_OutOfRangeNodeFails(t *testing.T) {
	body := "*vertices 2\n*arcs\n1 5\n"
	_, err := ioadapter.ReadPajek(strings.NewReader(body))
	if !errors.Is(err, ioadapter.ErrNodeIDOutOfRange) {
		t.Fatalf("expected ErrNodeIDOutOfRange, got %v", err)
	}
}

func TestLoadBinaryAttributes_ParsesMissingAndValues(t *testing.T) {
	table := "smoker athlete\n1 0\n0 NA\n1 1\n"
	attrs := digraph.NewNodeAttributes(3)
	if err := ioadapter.LoadBinaryAttributes(strings.NewReader(table), attrs, 3); err != nil {
		t.Fatalf("LoadBinaryAttributes: %v", err)
	}
	val, missing, ok := attrs.Binary("athlete", 1)
	if !ok || !missing {
		t.Fatalf("expected athlete row 1 to be missing, got val=%d missing=%v ok=%v", val, missing, ok)
	}
	val, missing, ok = attrs.Binary("smoker", 0)
	if !ok || missing || val != 1 {
		t.Fatalf("expected smoker row 0 = 1, got val=%d missing=%v ok=%v", val, missing, ok)
	}
}

func TestLoadBinaryAttributes_RowCountMismatchFails(t *testing.T) {
	table := "smoker\n1\n0\n"
	attrs := digraph.NewNodeAttributes(3)
	if err := ioadapter.LoadBinaryAttributes(strings.NewReader(table), attrs, 3); !errors.Is(err, ioadapter.ErrAttrRowCountMismatch) {
		t.Fatalf("expected ErrAttrRowCountMismatch, got %v", err)
	}
}

func TestReadZoneFile_AssignsEveryNode(t *testing.T) {
	body := "0 0\n1 0\n2 1\n"
	zone, err := ioadapter.ReadZoneFile(strings.NewReader(body), 3)
	if err != nil {
		t.Fatalf("ReadZoneFile: %v", err)
	}
	if zone[2] != 1 {
		t.Fatalf("expected node 2 in zone 1, got %d", zone[2])
	}
}

func TestReadZoneFile_MissingAssignmentFails(t *testing.T) {
	body := "0 0\n1 0\n"
	if _, err := ioadapter.ReadZoneFile(strings.NewReader(body), 3); !errors.Is(err, ioadapter.ErrMalformedZoneFile) {
		t.Fatalf("expected ErrMalformedZoneFile for missing node 2, got %v", err)
	}
}

func TestWriteThetaTrajectory_OneRowPerOuterIteration(t *testing.T) {
	traj := estimator.Trajectory{
		{Theta: []float64{1, 2}, DzA: []float64{0.1, 0.2}},
		{Theta: []float64{1.1, 2.2}, DzA: []float64{0.05, 0.1}},
	}
	var buf bytes.Buffer
	if err := ioadapter.WriteThetaTrajectory(&buf, traj); err != nil {
		t.Fatalf("WriteThetaTrajectory: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), buf.String())
	}
}

func TestReportRoundTrip(t *testing.T) {
	rep := ioadapter.Report{
		RunID: "abc-123", FinalTheta: []float64{0.5, -1.2}, ScaleD: []float64{1, 1},
		Ssteps: 10, EEsteps: 20, EEinnerSteps: 5, FinalDzANorm: 0.01, AcceptanceRate: 0.4, Seed: 99,
	}
	var buf bytes.Buffer
	if err := ioadapter.WriteReport(&buf, rep); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	got, err := ioadapter.ReadReport(&buf)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if got.RunID != rep.RunID || got.Seed != rep.Seed {
		t.Fatalf("report round trip mismatch: got %+v, want %+v", got, rep)
	}
}
