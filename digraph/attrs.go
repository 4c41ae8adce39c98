// File: attrs.go
// Role: read-only node attribute storage. Four attribute kinds share one
// "missing" convention: a per-node boolean mask that forces any change
// statistic touching that node/attribute pair to contribute exactly
// zero.
package digraph

// NodeAttributes holds every attribute column loaded for a graph, keyed
// by attribute name. Columns are immutable once constructed; there is no
// setter beyond the constructor helpers below.
type NodeAttributes struct {
	n int32

	binary     map[string][]int8
	binaryNA   map[string][]bool
	catg       map[string][]int32
	catgNA     map[string][]bool
	cont       map[string][]float64
	contNA     map[string][]bool
	setAttr    map[string][][]int32
	setAttrNA  map[string][]bool
}

// NewNodeAttributes allocates an empty attribute table for n nodes.
func NewNodeAttributes(n int32) *NodeAttributes {
	return &NodeAttributes{
		n:         n,
		binary:    make(map[string][]int8),
		binaryNA:  make(map[string][]bool),
		catg:      make(map[string][]int32),
		catgNA:    make(map[string][]bool),
		cont:      make(map[string][]float64),
		contNA:    make(map[string][]bool),
		setAttr:   make(map[string][][]int32),
		setAttrNA: make(map[string][]bool),
	}
}

// AddBinary loads a binary attribute column. values and na must both have
// length n.
func (a *NodeAttributes) AddBinary(name string, values []int8, na []bool) error {
	if len(values) != int(a.n) || len(na) != int(a.n) {
		return ErrAttrMismatch
	}
	a.binary[name] = values
	a.binaryNA[name] = na
	return nil
}

// AddCategorical loads a categorical-integer attribute column.
func (a *NodeAttributes) AddCategorical(name string, values []int32, na []bool) error {
	if len(values) != int(a.n) || len(na) != int(a.n) {
		return ErrAttrMismatch
	}
	a.catg[name] = values
	a.catgNA[name] = na
	return nil
}

// AddContinuous loads a continuous-real attribute column.
func (a *NodeAttributes) AddContinuous(name string, values []float64, na []bool) error {
	if len(values) != int(a.n) || len(na) != int(a.n) {
		return ErrAttrMismatch
	}
	a.cont[name] = values
	a.contNA[name] = na
	return nil
}

// AddSet loads a set-of-integers attribute column.
func (a *NodeAttributes) AddSet(name string, values [][]int32, na []bool) error {
	if len(values) != int(a.n) || len(na) != int(a.n) {
		return ErrAttrMismatch
	}
	a.setAttr[name] = values
	a.setAttrNA[name] = na
	return nil
}

// Binary returns node v's value for a binary attribute, and whether it is
// missing. ok is false if the attribute name is unknown.
func (a *NodeAttributes) Binary(name string, v int32) (val int8, missing bool, ok bool) {
	col, exists := a.binary[name]
	if !exists {
		return 0, false, false
	}
	return col[v], a.binaryNA[name][v], true
}

// Categorical returns node v's value for a categorical attribute.
func (a *NodeAttributes) Categorical(name string, v int32) (val int32, missing bool, ok bool) {
	col, exists := a.catg[name]
	if !exists {
		return 0, false, false
	}
	return col[v], a.catgNA[name][v], true
}

// Continuous returns node v's value for a continuous attribute.
func (a *NodeAttributes) Continuous(name string, v int32) (val float64, missing bool, ok bool) {
	col, exists := a.cont[name]
	if !exists {
		return 0, false, false
	}
	return col[v], a.contNA[name][v], true
}

// Set returns node v's value for a set-valued attribute.
func (a *NodeAttributes) Set(name string, v int32) (val []int32, missing bool, ok bool) {
	col, exists := a.setAttr[name]
	if !exists {
		return nil, false, false
	}
	return col[v], a.setAttrNA[name][v], true
}

// HasAttribute reports whether name was loaded under any of the four
// kinds.
func (a *NodeAttributes) HasAttribute(name string) bool {
	if _, ok := a.binary[name]; ok {
		return true
	}
	if _, ok := a.catg[name]; ok {
		return true
	}
	if _, ok := a.cont[name]; ok {
		return true
	}
	if _, ok := a.setAttr[name]; ok {
		return true
	}
	return false
}
