// Package digraph implements the directed-graph store at the heart of the
// ERGM engine: a fixed-node-count directed multigraph-free graph with
// integer node IDs 0..N-1, O(1) expected-time arc queries, and O(1) arc
// insert/remove by swap-with-last.
//
// The representation is deliberately unlike a general-purpose graph
// library: nodes never move, arcs toggle by the million during a single
// sampling chain, and exactly one goroutine ever touches a Graph at a
// time (see the package-level concurrency note in sampler). There is no
// internal locking; callers own serialization.
//
// A Graph also carries read-only NodeAttributes and an optional
// SnowballMeta for conditional (snowball-sample) estimation. Both are
// attached once at construction. NodeAttributes is never mutated
// afterward; SnowballMeta's inner-arc count and previous-wave degrees
// are updated by InsertInnerArc/RemoveInnerArc.
package digraph

import "errors"

// Sentinel errors for digraph operations. Callers branch on these with
// errors.Is; messages are never matched by substring.
var (
	// ErrSelfLoop indicates an arc was requested from a node to itself.
	ErrSelfLoop = errors.New("digraph: self-loop not allowed")

	// ErrNodeRange indicates a node index outside [0, N).
	ErrNodeRange = errors.New("digraph: node index out of range")

	// ErrArcExists indicates InsertArc was called for an arc already present.
	ErrArcExists = errors.New("digraph: arc already exists")

	// ErrArcMissing indicates RemoveArc (or a toggle assuming presence) was
	// called for an arc that is not present.
	ErrArcMissing = errors.New("digraph: arc does not exist")

	// ErrArcPosition indicates a stale or out-of-range flat-list position
	// was passed to RemoveArc.
	ErrArcPosition = errors.New("digraph: arc position stale or out of range")

	// ErrZoneGap indicates a toggle was attempted between nodes whose
	// snowball zones differ by more than one.
	ErrZoneGap = errors.New("digraph: zone difference exceeds one")

	// ErrZoneOuter indicates a toggle touched a node at the outermost
	// snowball zone (max_zone), which must never change degree.
	ErrZoneOuter = errors.New("digraph: arc touches outermost zone")

	// ErrLastWaveLink indicates a delete would drop a node's count of
	// neighbors in the previous wave to zero, which conditional
	// estimation forbids.
	ErrLastWaveLink = errors.New("digraph: delete would orphan node from previous wave")

	// ErrAttrMismatch indicates an attribute column's length does not
	// match the graph's node count.
	ErrAttrMismatch = errors.New("digraph: attribute length does not match node count")

	// ErrUnknownAttr indicates a lookup for an attribute name that was
	// never loaded.
	ErrUnknownAttr = errors.New("digraph: unknown attribute name")

	// ErrInvariantViolation indicates CheckInvariants found the graph's
	// arc-list/reverse-index bookkeeping inconsistent with itself. Only
	// ever surfaced by debug-build assertions (see invariants.go); a
	// release build never calls CheckInvariants on its own.
	ErrInvariantViolation = errors.New("digraph: invariant violation")
)
