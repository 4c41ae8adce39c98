package digraph

// Arc is an ordered pair (Tail, Head); Tail→Head.
type Arc struct {
	Tail int32
	Head int32
}

// packArc packs an ordered pair into a single uint64 key for the reverse
// index and for two-path hash backends. Node IDs fit comfortably in
// int32, so this never loses information for any graph this engine can
// hold in memory.
func packArc(tail, head int32) uint64 {
	return uint64(uint32(tail))<<32 | uint64(uint32(head))
}

// Graph is a fixed-node-count directed graph: no self-loops, no parallel
// arcs. Node IDs are 0..N-1. It is NOT safe for concurrent use; exactly
// one goroutine mutates or reads a Graph at a time (see package doc).
type Graph struct {
	n int32 // node count, fixed at construction
	m int32 // current arc count

	out [][]int32 // out[i] = heads reachable directly from i (order not meaningful)
	in  [][]int32 // in[i]  = tails reaching i directly (order not meaningful)

	arcs   []Arc            // flat arc list, order not meaningful
	arcPos map[uint64]int32 // packArc(tail,head) -> index into arcs

	attrs *NodeAttributes // nil if none loaded
	snow  *SnowballMeta   // nil if unconditional estimation

	twoPath TwoPathIndex // nil disables the accelerator (on-demand fallback)
}

// TwoPathIndex is the minimal interface digraph needs to keep a two-path
// accelerator (see package digraph/twopath) up to date as arcs toggle.
// digraph depends only on this interface, never on a concrete backend, so
// that strategy selection (dense/sparse/disabled) stays a runtime choice
// (see spec design note on polymorphic dispatch / runtime strategy).
type TwoPathIndex interface {
	// Update adjusts the two-path count(s) affected by toggling the arc
	// (i, j); added is true when the arc was just inserted, false when it
	// was just removed. Implementations decide internally which relation
	// planes change.
	Update(g *Graph, i, j int32, added bool)
}

// NewGraph allocates an empty directed graph over n nodes (no arcs).
// n must be >= 0; n == 0 is a legal, arc-free graph.
func NewGraph(n int32) *Graph {
	g := &Graph{
		n:      n,
		out:    make([][]int32, n),
		in:     make([][]int32, n),
		arcs:   make([]Arc, 0),
		arcPos: make(map[uint64]int32),
	}
	return g
}

// WithTwoPathIndex attaches a two-path accelerator. Pass nil to disable
// the accelerator (the on-demand neighbor-intersection fallback used by
// package stats). Must be called before any arcs are inserted if the
// index is to stay consistent with the graph from the start.
func (g *Graph) WithTwoPathIndex(idx TwoPathIndex) *Graph {
	g.twoPath = idx
	return g
}

// WithAttributes attaches read-only node attributes. attrs must already
// be validated against N (the Add* methods of NodeAttributes reject a
// column whose length differs, with ErrAttrMismatch).
func (g *Graph) WithAttributes(attrs *NodeAttributes) *Graph {
	g.attrs = attrs
	return g
}

// WithSnowball attaches read-only snowball-sample metadata.
func (g *Graph) WithSnowball(s *SnowballMeta) *Graph {
	g.snow = s
	return g
}

// N returns the fixed node count.
func (g *Graph) N() int32 { return g.n }

// M returns the current arc count.
func (g *Graph) M() int32 { return g.m }

// Attrs returns the attached node attributes, or nil if none were loaded.
func (g *Graph) Attrs() *NodeAttributes { return g.attrs }

// Snowball returns the attached snowball metadata, or nil if this graph
// is not under conditional estimation.
func (g *Graph) Snowball() *SnowballMeta { return g.snow }

// TwoPath returns the attached two-path accelerator, or nil if disabled.
func (g *Graph) TwoPath() TwoPathIndex { return g.twoPath }
