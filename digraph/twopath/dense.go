package twopath

import "github.com/katalvlaran/ergmcore/digraph"

// Dense is the N×N-per-relation contiguous-array backend: O(1) query
// and update, Θ(N²) memory. Follows the dense-adjacency-matrix idiom,
// generalized to three stacked planes instead of one.
//
// Infeasible beyond roughly 50k nodes (25e8 int64 cells per plane); the
// caller is responsible for choosing Sparse or disabling the accelerator
// at that scale (cmd/ergmcore switches to Sparse above its
// denseTwoPathLimit).
type Dense struct {
	n    int32
	data []int64 // plane-major: data[rel*n*n + i*n + j]
}

// NewDense allocates a zeroed dense two-path index for n nodes.
func NewDense(n int32) *Dense {
	return &Dense{n: n, data: make([]int64, int64(numRelations)*int64(n)*int64(n))}
}

func (d *Dense) cellIndex(rel Relation, i, j int32) int64 {
	return int64(rel)*int64(d.n)*int64(d.n) + int64(i)*int64(d.n) + int64(j)
}

// Query returns the current count for (rel, i, j).
func (d *Dense) Query(rel Relation, i, j int32) int64 {
	return d.data[d.cellIndex(rel, i, j)]
}

func (d *Dense) add(rel Relation, i, j int32, delta int64) {
	d.data[d.cellIndex(rel, i, j)] += delta
}

// Update applies the incremental maintenance rule for one arc toggle.
func (d *Dense) Update(g *digraph.Graph, i, j int32, added bool) {
	delta := int64(1)
	if !added {
		delta = -1
	}
	applyToggle(g, i, j, delta, d.add)
}

// Rebuild recomputes every cell from scratch by neighbor-list
// intersection. Used by tests to assert no incremental drift; not part
// of the hot path.
func (d *Dense) Rebuild(g *digraph.Graph) {
	for k := range d.data {
		d.data[k] = 0
	}
	for i := int32(0); i < d.n; i++ {
		for j := int32(0); j < d.n; j++ {
			if i == j {
				continue
			}
			d.data[d.cellIndex(Out, i, j)] = recomputeCell(g, Out, i, j)
			d.data[d.cellIndex(In, i, j)] = recomputeCell(g, In, i, j)
			d.data[d.cellIndex(Mixed, i, j)] = recomputeCell(g, Mixed, i, j)
		}
	}
}
