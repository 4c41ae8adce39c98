package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ergmcore/digraph"
)

// Attribute-driven statistics need the attribute table and the
// Selection's covariate registry, not just the graph and dyad, so they
// are dispatched through this separate signature rather than forced into
// the structural statistics' four-argument shape.

func senderDelta(g *digraph.Graph, stat Statistic, i, _ int32) (float64, error) {
	val, ok, err := binaryAt(g, stat.Attr, i)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return val, nil
}

func receiverDelta(g *digraph.Graph, stat Statistic, _, j int32) (float64, error) {
	val, ok, err := binaryAt(g, stat.Attr, j)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return val, nil
}

func matchingDelta(g *digraph.Graph, stat Statistic, i, j int32) (float64, error) {
	return matchIndicator(g, stat.Attr, i, j)
}

func matchingReciprocityDelta(g *digraph.Graph, stat Statistic, i, j int32) (float64, error) {
	match, err := matchIndicator(g, stat.Attr, i, j)
	if err != nil || match == 0 {
		return 0, err
	}
	return match * reciprocityDelta(g, nil, i, j), nil
}

func continuousDiffDelta(g *digraph.Graph, stat Statistic, i, j int32) (float64, error) {
	attrs := g.Attrs()
	if attrs == nil || !attrs.HasAttribute(stat.Attr) {
		return 0, fmt.Errorf("%w: %s", ErrMissingAttribute, stat.Attr)
	}
	vi, mi, _ := attrs.Continuous(stat.Attr, i)
	vj, mj, _ := attrs.Continuous(stat.Attr, j)
	if mi || mj {
		return 0, nil
	}
	return -math.Abs(vi - vj), nil
}

func dyadicCovariateDelta(sel *Selection, stat Statistic, i, j int32) (float64, error) {
	m, ok := sel.covariate(stat.Covariate)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingCovariate, stat.Covariate)
	}
	if int(i) >= len(m) || int(j) >= len(m[i]) {
		return 0, nil
	}
	return m[i][j], nil
}

func attrInteractionDelta(g *digraph.Graph, stat Statistic, i, j int32) (float64, error) {
	a, okA, err := binaryAt(g, stat.Attr, i)
	if err != nil {
		return 0, err
	}
	b, okB, err := binaryAt(g, stat.Attr2, j)
	if err != nil {
		return 0, err
	}
	if !okA || !okB {
		return 0, nil
	}
	return a * b, nil
}

// binaryAt fetches a binary attribute value as a float64, distinguishing
// "attribute not loaded" (a config error) from "value missing for this
// node" (contributes zero, ok=false).
func binaryAt(g *digraph.Graph, name string, v int32) (val float64, ok bool, err error) {
	attrs := g.Attrs()
	if attrs == nil || !attrs.HasAttribute(name) {
		return 0, false, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	raw, missing, loaded := attrs.Binary(name, v)
	if !loaded || missing {
		return 0, false, nil
	}
	return float64(raw), true, nil
}

// matchIndicator returns 1 if i and j share the same categorical value
// for name, 0 otherwise (including when either side is missing).
func matchIndicator(g *digraph.Graph, name string, i, j int32) (float64, error) {
	attrs := g.Attrs()
	if attrs == nil || !attrs.HasAttribute(name) {
		return 0, fmt.Errorf("%w: %s", ErrMissingAttribute, name)
	}
	vi, mi, _ := attrs.Categorical(name, i)
	vj, mj, _ := attrs.Categorical(name, j)
	if mi || mj {
		return 0, nil
	}
	if vi == vj {
		return 1, nil
	}
	return 0, nil
}
